package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"workspark/internal/domain/user"
	"workspark/internal/pkg/jwt"
	ucauth "workspark/internal/usecase/auth"

	"github.com/google/uuid"
)

type memoryUsers struct {
	users    map[uuid.UUID]user.User
	profiles map[uuid.UUID]user.Profile
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[uuid.UUID]user.User{}, profiles: map[uuid.UUID]user.Profile{}}
}

func (m *memoryUsers) Create(_ context.Context, u user.User, p user.Profile) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	m.users[u.ID] = u
	m.profiles[u.ID] = p
	return nil
}

func (m *memoryUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memoryUsers) GetByUserID(_ context.Context, id uuid.UUID) (user.Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func newTestAuth() (*Auth, *memoryUsers) {
	store := newMemoryUsers()
	svc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	return NewAuthUsecase(store, store, svc), store
}

func TestAuth_RegisterThenLogin(t *testing.T) {
	uc, _ := newTestAuth()
	ctx := context.Background()

	res, err := uc.Register(ctx, ucauth.RegisterInput{
		Email:       " Buyer@Example.com ",
		Password:    "s3cretpass",
		UserType:    "buyer",
		CompanyName: "Acme",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.User.Email != "buyer@example.com" || res.User.PasswordHash != "" {
		t.Fatalf("unexpected user %+v", res.User)
	}
	if res.Profile == nil || !res.Profile.CanPostJobs() {
		t.Fatalf("expected buyer profile, got %+v", res.Profile)
	}
	if res.AccessToken == "" || res.RefreshToken == "" {
		t.Fatalf("expected tokens")
	}

	login, err := uc.Login(ctx, ucauth.LoginInput{Email: "buyer@example.com", Password: "s3cretpass"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.Profile == nil || login.Profile.UserType != user.TypeBuyer {
		t.Fatalf("login profile %+v", login.Profile)
	}

	if _, err := uc.Login(ctx, ucauth.LoginInput{Email: "buyer@example.com", Password: "wrong-pass"}); !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_RegisterRejects(t *testing.T) {
	uc, _ := newTestAuth()
	ctx := context.Background()
	in := ucauth.RegisterInput{Email: "t@example.com", Password: "longenough", UserType: "talent"}

	if _, err := uc.Register(ctx, in); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := uc.Register(ctx, in); !errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	bad := []ucauth.RegisterInput{
		{Email: "nope", Password: "longenough", UserType: "talent"},
		{Email: "a@example.com", Password: "short", UserType: "talent"},
		{Email: "b@example.com", Password: "longenough", UserType: "admin"},
	}
	for _, b := range bad {
		if _, err := uc.Register(ctx, b); !errors.Is(err, ucauth.ErrInvalidInput) {
			t.Fatalf("%+v: expected ErrInvalidInput, got %v", b, err)
		}
	}
}

func TestAuth_Refresh(t *testing.T) {
	uc, _ := newTestAuth()
	ctx := context.Background()

	res, err := uc.Register(ctx, ucauth.RegisterInput{Email: "r@example.com", Password: "longenough", UserType: "talent"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	access, refresh, err := uc.Refresh(ctx, res.RefreshToken)
	if err != nil || access == "" || refresh == "" {
		t.Fatalf("refresh: %v", err)
	}
	if _, _, err := uc.Refresh(ctx, res.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("access token must not refresh, got %v", err)
	}
	if _, _, err := uc.Refresh(ctx, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
