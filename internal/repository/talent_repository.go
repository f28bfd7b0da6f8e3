package repository

import (
	"context"

	"workspark/internal/database"
	"workspark/internal/discovery"
	"workspark/internal/domain/talent"
)

type TalentRepository interface {
	Query(ctx context.Context, q discovery.TalentQuery) ([]talent.Talent, error)
}

type PostgresTalentRepository struct {
	db database.DB
}

func NewPostgresTalentRepository(db database.DB) *PostgresTalentRepository {
	return &PostgresTalentRepository{db: db}
}

func (r *PostgresTalentRepository) Query(ctx context.Context, q discovery.TalentQuery) ([]talent.Talent, error) {
	stmt, args := buildTalentListSQL(q)
	rows, err := r.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]talent.Talent, 0)
	for rows.Next() {
		var t talent.Talent
		var skills []string
		if err := rows.Scan(
			&t.ID, &t.ProfileID, &t.Headline, &t.HourlyRate, &t.Rating, &skills, &t.TotalJobs,
			&t.ExperienceLevel, &t.Availability, &t.CreatedAt,
			&t.Profile.FullName, &t.Profile.Location, &t.Profile.AvatarURL, &t.Profile.IsVerified,
		); err != nil {
			return nil, err
		}
		t.Skills = skills
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
