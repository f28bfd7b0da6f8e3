package dto

import (
	"workspark/internal/domain/talent"
	"workspark/internal/usecase"

	"github.com/google/uuid"
)

type TalentResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Headline        string    `json:"headline"`
	Location        string    `json:"location"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	IsVerified      bool      `json:"is_verified"`
	HourlyRate      *float64  `json:"hourly_rate"`
	Rating          *float64  `json:"rating"`
	Skills          []string  `json:"skills"`
	TotalJobs       int       `json:"total_jobs"`
	ExperienceLevel string    `json:"experience_level"`
	Availability    string    `json:"availability"`
	Badge           string    `json:"badge,omitempty"`
	IsNew           bool      `json:"is_new"`
}

func NewTalentResponse(it usecase.TalentItem) TalentResponse {
	res := newTalent(it.Talent)
	res.Badge = it.Badge
	res.IsNew = it.IsNew
	return res
}

func NewTalentResponses(items []talent.Talent) []TalentResponse {
	out := make([]TalentResponse, 0, len(items))
	for _, t := range items {
		out = append(out, newTalent(t))
	}
	return out
}

func newTalent(t talent.Talent) TalentResponse {
	skills := t.Skills
	if skills == nil {
		skills = []string{}
	}
	return TalentResponse{
		ID:              t.ID,
		Name:            t.Profile.FullName,
		Headline:        t.Headline,
		Location:        t.Profile.Location,
		AvatarURL:       t.Profile.AvatarURL,
		IsVerified:      t.Profile.IsVerified,
		HourlyRate:      t.HourlyRate,
		Rating:          t.Rating,
		Skills:          skills,
		TotalJobs:       t.TotalJobs,
		ExperienceLevel: t.ExperienceLevel,
		Availability:    t.Availability,
		IsNew:           t.IsNew(),
	}
}
