package dto

import (
	"time"

	"workspark/internal/discovery"
	"workspark/internal/domain/job"
	"workspark/internal/usecase"

	"github.com/google/uuid"
)

type JobPosterResponse struct {
	Name       string `json:"name"`
	Location   string `json:"location,omitempty"`
	IsVerified bool   `json:"is_verified"`
}

type JobListResponse struct {
	JobID              uuid.UUID         `json:"job_id"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	CategoryID         uuid.UUID         `json:"category_id"`
	CategoryName       string            `json:"category_name"`
	BudgetType         string            `json:"budget_type"`
	BudgetTypeLabel    string            `json:"budget_type_label"`
	BudgetMin          *float64          `json:"budget_min"`
	BudgetMax          *float64          `json:"budget_max"`
	Currency           string            `json:"currency"`
	BudgetLabel        string            `json:"budget_label"`
	ExperienceLevel    string            `json:"experience_level"`
	Skills             []string          `json:"skills"`
	SkillsPreview      []string          `json:"skills_preview"`
	MoreSkills         int               `json:"more_skills"`
	IsRemote           bool              `json:"is_remote"`
	LocationPreference *string           `json:"location_preference"`
	Duration           *string           `json:"duration"`
	ApplicationsCount  int               `json:"applications_count"`
	Status             string            `json:"status"`
	PostedDate         string            `json:"posted_date"`
	PostedAgo          string            `json:"posted_ago"`
	Poster             JobPosterResponse `json:"poster"`
}

type JobDetailResponse struct {
	JobListResponse
	ScreeningQuestions []string `json:"screening_questions"`
	ExpiresAt          *string  `json:"expires_at"`
}

// JobListingResponse is the body of a composed listing.
type JobListingResponse struct {
	Criteria discovery.Criteria `json:"criteria"`
	Total    int                `json:"total"`
	Jobs     []JobListResponse  `json:"jobs"`
}

func NewJobListResponse(it usecase.JobListItem) JobListResponse {
	j := it.Job
	skills := j.SkillsRequired
	if skills == nil {
		skills = []string{}
	}
	preview := it.SkillsPreview
	if preview == nil {
		preview = []string{}
	}
	return JobListResponse{
		JobID:              j.ID,
		Title:              j.Title,
		Description:        j.Description,
		CategoryID:         j.CategoryID,
		CategoryName:       j.CategoryName,
		BudgetType:         string(j.BudgetType),
		BudgetTypeLabel:    it.BudgetTypeLabel,
		BudgetMin:          j.BudgetMin,
		BudgetMax:          j.BudgetMax,
		Currency:           j.Currency,
		BudgetLabel:        it.BudgetLabel,
		ExperienceLevel:    string(j.ExperienceLevel),
		Skills:             skills,
		SkillsPreview:      preview,
		MoreSkills:         it.MoreSkills,
		IsRemote:           j.IsRemote,
		LocationPreference: j.LocationPreference,
		Duration:           j.Duration,
		ApplicationsCount:  j.ApplicationsCount,
		Status:             string(j.Status),
		PostedDate:         formatTime(j.CreatedAt),
		PostedAgo:          it.PostedAgo,
		Poster: JobPosterResponse{
			Name:       it.PosterName,
			Location:   j.Poster.Location,
			IsVerified: j.Poster.IsVerified,
		},
	}
}

func NewJobListResponses(items []usecase.JobListItem) []JobListResponse {
	out := make([]JobListResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewJobListResponse(it))
	}
	return out
}

func NewJobDetailResponse(it usecase.JobListItem) JobDetailResponse {
	questions := it.Job.ScreeningQuestions
	if questions == nil {
		questions = []string{}
	}
	res := JobDetailResponse{JobListResponse: NewJobListResponse(it), ScreeningQuestions: questions}
	if it.Job.ExpiresAt != nil {
		s := formatTime(*it.Job.ExpiresAt)
		res.ExpiresAt = &s
	}
	return res
}

// NewCreatedJobResponse renders a freshly inserted job.
func NewCreatedJobResponse(j job.Job, now time.Time) JobDetailResponse {
	return NewJobDetailResponse(usecase.PresentJob(j, now))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
