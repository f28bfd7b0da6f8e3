package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestTalentUsecase_Limits(t *testing.T) {
	repo := &fakeTalentRepo{}
	uc := NewTalentUsecase(repo)

	if _, err := uc.ListTalents(context.Background(), " React ", 0); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if q := repo.queries[0]; q.Limit != 12 || q.Skill != "React" {
		t.Fatalf("unexpected query %+v", q)
	}

	for _, limit := range []int{-1, 51} {
		if _, err := uc.ListTalents(context.Background(), "", limit); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("limit %d: expected ErrInvalidInput, got %v", limit, err)
		}
	}
}
