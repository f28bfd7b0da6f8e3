package user

import (
	"context"
	"errors"

	"workspark/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrInternal = errors.New("internal error")
)

// Me is the signed-in account with its marketplace profile, if any.
type Me struct {
	User    user.User
	Profile *user.Profile
}

type Service struct {
	users    user.Repository
	profiles user.ProfileRepository
}

func NewService(users user.Repository, profiles user.ProfileRepository) *Service {
	return &Service{users: users, profiles: profiles}
}

func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (Me, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Me{}, ErrNotFound
		}
		return Me{}, ErrInternal
	}
	usr.PasswordHash = ""

	me := Me{User: usr}
	p, err := s.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		me.Profile = &p
	case !errors.Is(err, user.ErrProfileNotFound):
		return Me{}, ErrInternal
	}
	return me, nil
}
