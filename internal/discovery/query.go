package discovery

import (
	"strings"

	"workspark/internal/domain/job"

	"github.com/google/uuid"
)

// JobQuery is the set of predicates the store evaluates. Budget buckets are
// not part of it; they are applied locally after the fetch.
type JobQuery struct {
	Status          job.Status
	CategoryID      *uuid.UUID
	ExperienceLevel *job.ExperienceLevel
	// SearchText is matched case-insensitively as a substring of the
	// title or the description.
	SearchText string
	// Newest first is the only supported order.
	OrderByCreatedDesc bool
	Limit              int
}

// TalentQuery selects talents ordered by rating, highest first.
type TalentQuery struct {
	Skill string
	Limit int
}

// BuildJobQuery translates criteria into store predicates. It expects
// criteria that passed Validate; unparseable selectors are ignored.
func BuildJobQuery(c Criteria) JobQuery {
	q := JobQuery{
		Status:             job.StatusOpen,
		SearchText:         strings.TrimSpace(c.SearchText),
		OrderByCreatedDesc: true,
	}

	if c.CategoryID != "" && c.CategoryID != All {
		if id, err := uuid.Parse(c.CategoryID); err == nil {
			q.CategoryID = &id
		}
	}
	if c.ExperienceLevel != "" && c.ExperienceLevel != All {
		if lvl, err := job.ParseExperienceLevel(c.ExperienceLevel); err == nil {
			q.ExperienceLevel = &lvl
		}
	}
	return q
}

// BuildCategoryJobQuery selects the newest open jobs of one category.
func BuildCategoryJobQuery(categoryID uuid.UUID, limit int) JobQuery {
	id := categoryID
	return JobQuery{
		Status:             job.StatusOpen,
		CategoryID:         &id,
		OrderByCreatedDesc: true,
		Limit:              limit,
	}
}

func BuildTalentQuery(skill string, limit int) TalentQuery {
	if limit < 0 {
		limit = 0
	}
	return TalentQuery{Skill: strings.TrimSpace(skill), Limit: limit}
}
