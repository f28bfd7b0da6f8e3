// Package discovery turns job filter selections into a fetched, locally
// refined and display-ready job listing.
package discovery

import (
	"fmt"
	"net/url"
	"strings"

	"workspark/internal/domain/job"

	"github.com/google/uuid"
)

// All is the selector value that disables a filter.
const All = "all"

// Query parameter names used when criteria are carried in a URL.
const (
	ParamSearch     = "q"
	ParamCategory   = "category"
	ParamBudget     = "budget"
	ParamExperience = "experience"
)

// Criteria is one snapshot of every active search and filter selection.
type Criteria struct {
	SearchText      string       `json:"search_text"`
	CategoryID      string       `json:"category_id"`
	BudgetBucket    BudgetBucket `json:"budget_bucket"`
	ExperienceLevel string       `json:"experience_level"`
}

// DefaultCriteria selects everything.
func DefaultCriteria() Criteria {
	return Criteria{
		CategoryID:      All,
		BudgetBucket:    BucketAll,
		ExperienceLevel: All,
	}
}

// Validate rejects empty selectors and values outside the known sets.
// Empty selectors are caller bugs: "all" must be explicit.
func (c Criteria) Validate() error {
	switch {
	case c.CategoryID == "":
		return fmt.Errorf("%w: empty category selector", ErrInvalidCriteria)
	case c.BudgetBucket == "":
		return fmt.Errorf("%w: empty budget selector", ErrInvalidCriteria)
	case c.ExperienceLevel == "":
		return fmt.Errorf("%w: empty experience selector", ErrInvalidCriteria)
	}

	if c.CategoryID != All {
		if _, err := uuid.Parse(c.CategoryID); err != nil {
			return fmt.Errorf("%w: category %q", ErrInvalidCriteria, c.CategoryID)
		}
	}
	if _, err := ParseBudgetBucket(string(c.BudgetBucket)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCriteria, err)
	}
	if c.ExperienceLevel != All {
		if _, err := job.ParseExperienceLevel(c.ExperienceLevel); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCriteria, err)
		}
	}
	return nil
}

// ParseCriteria reads criteria from URL query values. Missing selectors
// default to "all" so partial deep links still resolve.
func ParseCriteria(v url.Values) (Criteria, error) {
	c := DefaultCriteria()
	c.SearchText = v.Get(ParamSearch)

	if s := strings.TrimSpace(v.Get(ParamCategory)); s != "" {
		c.CategoryID = s
	}
	if s := strings.TrimSpace(v.Get(ParamBudget)); s != "" {
		c.BudgetBucket = BudgetBucket(s)
	}
	if s := strings.TrimSpace(v.Get(ParamExperience)); s != "" {
		c.ExperienceLevel = s
	}

	if err := c.Validate(); err != nil {
		return Criteria{}, err
	}
	return c, nil
}

// Values encodes the criteria as URL query values, omitting "all" selectors
// and empty search text.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(c.SearchText); s != "" {
		v.Set(ParamSearch, c.SearchText)
	}
	if c.CategoryID != "" && c.CategoryID != All {
		v.Set(ParamCategory, c.CategoryID)
	}
	if c.BudgetBucket != "" && c.BudgetBucket != BucketAll {
		v.Set(ParamBudget, string(c.BudgetBucket))
	}
	if c.ExperienceLevel != "" && c.ExperienceLevel != All {
		v.Set(ParamExperience, c.ExperienceLevel)
	}
	return v
}

// IsDefault reports whether no filter or search is active.
func (c Criteria) IsDefault() bool {
	return strings.TrimSpace(c.SearchText) == "" &&
		c.CategoryID == All &&
		c.BudgetBucket == BucketAll &&
		c.ExperienceLevel == All
}
