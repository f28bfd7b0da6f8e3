package usecase

import (
	"context"

	"workspark/internal/domain/skill"
	"workspark/internal/repository"
)

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]skill.Skill, error)
}

type Skill struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	items, err := u.repo.ListSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
