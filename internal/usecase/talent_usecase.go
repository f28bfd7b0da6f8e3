package usecase

import (
	"context"

	"workspark/internal/discovery"
	"workspark/internal/domain/talent"
	"workspark/internal/repository"
)

const (
	defaultTalentLimit = 12
	maxTalentLimit     = 50
)

type TalentUsecase interface {
	ListTalents(ctx context.Context, skill string, limit int) ([]talent.Talent, error)
}

type Talent struct {
	repo repository.TalentRepository
}

func NewTalentUsecase(repo repository.TalentRepository) *Talent {
	return &Talent{repo: repo}
}

// ListTalents returns talents ordered by rating, unrated last, optionally
// restricted to those listing skill.
func (u *Talent) ListTalents(ctx context.Context, skill string, limit int) ([]talent.Talent, error) {
	if limit == 0 {
		limit = defaultTalentLimit
	}
	if limit < 0 || limit > maxTalentLimit {
		return nil, ErrInvalidInput
	}

	items, err := u.repo.Query(ctx, discovery.BuildTalentQuery(skill, limit))
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
