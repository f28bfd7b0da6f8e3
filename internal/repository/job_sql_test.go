package repository

import (
	"strings"
	"testing"

	"workspark/internal/discovery"
	"workspark/internal/domain/job"

	"github.com/google/uuid"
)

func TestBuildJobListSQL_Default(t *testing.T) {
	stmt, args := buildJobListSQL(discovery.BuildJobQuery(discovery.DefaultCriteria()))

	if !strings.Contains(stmt, "WHERE j.status = $1") {
		t.Fatalf("expected only status predicate, got:\n%s", stmt)
	}
	if strings.Contains(stmt, "ILIKE") || strings.Contains(stmt, "category_id =") {
		t.Fatalf("unexpected optional predicate:\n%s", stmt)
	}
	if !strings.Contains(stmt, "ORDER BY j.created_at DESC") {
		t.Fatalf("expected newest-first order:\n%s", stmt)
	}
	if strings.Contains(stmt, "budget_max <") || strings.Contains(stmt, "budget_max >") {
		t.Fatalf("budget buckets must not be pushed to the store")
	}
	if len(args) != 1 || args[0] != "open" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestBuildJobListSQL_AllPredicates(t *testing.T) {
	catID := uuid.New()
	lvl := job.ExperienceExpert
	stmt, args := buildJobListSQL(discovery.JobQuery{
		Status:             job.StatusOpen,
		CategoryID:         &catID,
		ExperienceLevel:    &lvl,
		SearchText:         "50%_off",
		OrderByCreatedDesc: true,
		Limit:              10,
	})

	for _, want := range []string{
		"j.status = $1",
		"j.category_id = $2",
		"j.experience_level = $3",
		"(j.title ILIKE $4 OR j.description ILIKE $4)",
		"LIMIT $5",
	} {
		if !strings.Contains(stmt, want) {
			t.Errorf("missing %q in:\n%s", want, stmt)
		}
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %d", len(args))
	}
	if args[1] != catID || args[2] != "expert" {
		t.Fatalf("unexpected args %v", args)
	}
	if args[3] != `%50\%\_off%` {
		t.Fatalf("search pattern not escaped: %v", args[3])
	}
	if args[4] != 10 {
		t.Fatalf("unexpected limit arg %v", args[4])
	}
}

func TestBuildTalentListSQL(t *testing.T) {
	stmt, args := buildTalentListSQL(discovery.BuildTalentQuery("Graphic Design", 6))
	if !strings.Contains(stmt, "t.skills @> jsonb_build_array($1::text)") {
		t.Fatalf("expected containment predicate:\n%s", stmt)
	}
	if !strings.Contains(stmt, "ORDER BY t.rating DESC NULLS LAST") {
		t.Fatalf("expected rating order:\n%s", stmt)
	}
	if len(args) != 2 || args[0] != "Graphic Design" || args[1] != 6 {
		t.Fatalf("unexpected args %v", args)
	}

	stmt, args = buildTalentListSQL(discovery.TalentQuery{})
	if strings.Contains(stmt, "WHERE") || strings.Contains(stmt, "LIMIT") || len(args) != 0 {
		t.Fatalf("expected unfiltered unbounded query, got:\n%s %v", stmt, args)
	}
}

func TestEscapeLike(t *testing.T) {
	if got := escapeLike(`a\b%c_d`); got != `a\\b\%c\_d` {
		t.Fatalf("escapeLike = %q", got)
	}
}
