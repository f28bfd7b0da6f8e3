package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"workspark/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email       string `validate:"required,email"`
	Password    string `validate:"required,min=8"`
	UserType    string `validate:"required,oneof=buyer talent"`
	FullName    string `validate:"max=120"`
	CompanyName string `validate:"max=120"`
	Location    string `validate:"max=120"`
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	users    user.Repository
	validate *validator.Validate
}

func NewService(users user.Repository) *Service {
	return &Service{users: users, validate: validator.New()}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, user.Profile, error) {
	in.Email = normalizeEmail(in.Email)
	in.UserType = strings.ToLower(strings.TrimSpace(in.UserType))
	if strings.TrimSpace(in.Password) != in.Password {
		return user.User{}, user.Profile{}, ErrInvalidInput
	}
	if err := s.validate.Struct(in); err != nil {
		return user.User{}, user.Profile{}, ErrInvalidInput
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return user.User{}, user.Profile{}, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, user.Profile{}, ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, user.Profile{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	p := user.Profile{
		ID:          uuid.New(),
		UserID:      u.ID,
		Email:       in.Email,
		UserType:    user.Type(in.UserType),
		FullName:    optional(in.FullName),
		CompanyName: optional(in.CompanyName),
		Location:    optional(in.Location),
	}

	if err := s.users.Create(ctx, u, p); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, user.Profile{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, user.Profile{}, ErrInternal
	}

	return sanitizeUser(u), p, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
