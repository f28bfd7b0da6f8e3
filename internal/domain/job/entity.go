package job

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BudgetType string

const (
	BudgetFixed     BudgetType = "fixed"
	BudgetHourly    BudgetType = "hourly"
	BudgetMilestone BudgetType = "milestone"
)

type ExperienceLevel string

const (
	ExperienceEntry        ExperienceLevel = "entry"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExpert       ExperienceLevel = "expert"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
	StatusDraft  Status = "draft"
)

const DefaultCurrency = "INR"

// Poster holds the display fields of the account that created a job.
type Poster struct {
	FullName    string
	CompanyName string
	Location    string
	IsVerified  bool
}

// DisplayName prefers the company name and falls back to the person.
func (p Poster) DisplayName() string {
	if p.CompanyName != "" {
		return p.CompanyName
	}
	return p.FullName
}

type Job struct {
	ID                 uuid.UUID
	PosterID           uuid.UUID
	CategoryID         uuid.UUID
	CategoryName       string
	Title              string
	Description        string
	BudgetType         BudgetType
	BudgetMin          *float64
	BudgetMax          *float64
	Currency           string
	ExperienceLevel    ExperienceLevel
	SkillsRequired     []string
	IsRemote           bool
	LocationPreference *string
	Duration           *string
	ScreeningQuestions []string
	Status             Status
	ApplicationsCount  int
	ExpiresAt          *time.Time
	CreatedAt          time.Time
	Poster             Poster
}

// CreateJob is the insert payload; server-assigned fields are absent.
type CreateJob struct {
	PosterID           uuid.UUID
	CategoryID         uuid.UUID
	Title              string
	Description        string
	BudgetType         BudgetType
	BudgetMin          *float64
	BudgetMax          *float64
	Currency           string
	ExperienceLevel    ExperienceLevel
	SkillsRequired     []string
	IsRemote           bool
	LocationPreference *string
	Duration           *string
	ScreeningQuestions []string
	Status             Status
}

// BudgetStat is the projection used for per-category statistics.
type BudgetStat struct {
	BudgetMax *float64
	Status    Status
}

func ParseBudgetType(s string) (BudgetType, error) {
	bt := BudgetType(s)
	switch bt {
	case BudgetFixed, BudgetHourly, BudgetMilestone:
		return bt, nil
	}
	return "", fmt.Errorf("unknown budget type %q", s)
}

func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	lvl := ExperienceLevel(s)
	switch lvl {
	case ExperienceEntry, ExperienceIntermediate, ExperienceExpert:
		return lvl, nil
	}
	return "", fmt.Errorf("unknown experience level %q", s)
}

// Label is the human form shown next to a budget.
func (t BudgetType) Label() string {
	switch t {
	case BudgetFixed:
		return "Fixed Price"
	case BudgetHourly:
		return "Hourly"
	default:
		return "Milestone"
	}
}
