package dto

import (
	"workspark/internal/discovery"
	"workspark/internal/domain/category"
	"workspark/internal/usecase"

	"github.com/google/uuid"
)

type CategoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description"`
	IconURL     *string    `json:"icon_url"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

type CategoryStatsResponse struct {
	TotalJobs      int     `json:"total_jobs"`
	ActiveJobs     int     `json:"active_jobs"`
	AvgBudget      float64 `json:"avg_budget"`
	AvgBudgetLabel string  `json:"avg_budget_label"`
}

type CategoryDetailResponse struct {
	Category CategoryResponse      `json:"category"`
	Jobs     []JobListResponse     `json:"jobs"`
	Talents  []TalentResponse      `json:"talents"`
	Stats    CategoryStatsResponse `json:"stats"`
}

func NewCategoryResponse(c category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        usecase.CategorySlug(c.Name),
		Description: c.Description,
		IconURL:     c.IconURL,
		ParentID:    c.ParentID,
	}
}

func NewCategoryResponses(items []category.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}

func NewCategoryDetailResponse(d usecase.CategoryDetail) CategoryDetailResponse {
	talents := make([]TalentResponse, 0, len(d.Talents))
	for _, t := range d.Talents {
		talents = append(talents, NewTalentResponse(t))
	}
	return CategoryDetailResponse{
		Category: NewCategoryResponse(d.Category),
		Jobs:     NewJobListResponses(d.Jobs),
		Talents:  talents,
		Stats: CategoryStatsResponse{
			TotalJobs:      d.Stats.TotalJobs,
			ActiveJobs:     d.Stats.ActiveJobs,
			AvgBudget:      d.Stats.AvgBudget,
			AvgBudgetLabel: discovery.FormatAmount("INR", d.Stats.AvgBudget),
		},
	}
}
