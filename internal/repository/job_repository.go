package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workspark/internal/database"
	"workspark/internal/discovery"
	"workspark/internal/domain/job"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Query(ctx context.Context, q discovery.JobQuery) ([]job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	Create(ctx context.Context, in job.CreateJob) (job.Job, error)
	ListBudgetStats(ctx context.Context, categoryID uuid.UUID) ([]job.BudgetStat, error)
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// QueryJobs lets the repository serve directly as a discovery.JobSource.
func (r *PostgresJobRepository) QueryJobs(ctx context.Context, q discovery.JobQuery) ([]job.Job, error) {
	return r.Query(ctx, q)
}

func (r *PostgresJobRepository) Query(ctx context.Context, q discovery.JobQuery) ([]job.Job, error) {
	stmt, args := buildJobListSQL(q)
	rows, err := r.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, "SELECT "+jobSelectColumns+"\n"+jobFromClause+"\nWHERE j.id = $1", id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, in job.CreateJob) (job.Job, error) {
	skills := in.SkillsRequired
	if skills == nil {
		skills = []string{}
	}
	questions := in.ScreeningQuestions
	if questions == nil {
		questions = []string{}
	}

	var id uuid.UUID
	var createdAt time.Time
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (
			poster_id, category_id, title, description, budget_type, budget_min, budget_max,
			currency, duration, experience_level, skills_required, location_preference,
			is_remote, screening_questions, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at`,
		in.PosterID, in.CategoryID, in.Title, in.Description, string(in.BudgetType), in.BudgetMin, in.BudgetMax,
		in.Currency, in.Duration, string(in.ExperienceLevel), skills, in.LocationPreference,
		in.IsRemote, questions, string(in.Status),
	)
	if err := row.Scan(&id, &createdAt); err != nil {
		return job.Job{}, fmt.Errorf("insert job: %w", err)
	}

	return job.Job{
		ID:                 id,
		PosterID:           in.PosterID,
		CategoryID:         in.CategoryID,
		Title:              in.Title,
		Description:        in.Description,
		BudgetType:         in.BudgetType,
		BudgetMin:          in.BudgetMin,
		BudgetMax:          in.BudgetMax,
		Currency:           in.Currency,
		ExperienceLevel:    in.ExperienceLevel,
		SkillsRequired:     skills,
		IsRemote:           in.IsRemote,
		LocationPreference: in.LocationPreference,
		Duration:           in.Duration,
		ScreeningQuestions: questions,
		Status:             in.Status,
		CreatedAt:          createdAt,
	}, nil
}

func (r *PostgresJobRepository) ListBudgetStats(ctx context.Context, categoryID uuid.UUID) ([]job.BudgetStat, error) {
	rows, err := r.db.Query(ctx, `SELECT budget_max, status FROM jobs WHERE category_id = $1`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.BudgetStat, 0)
	for rows.Next() {
		var s job.BudgetStat
		var status string
		if err := rows.Scan(&s.BudgetMax, &status); err != nil {
			return nil, err
		}
		s.Status = job.Status(status)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CloseExpired closes open jobs whose expiry is at or before now.
func (r *PostgresJobRepository) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	return r.db.Exec(ctx,
		`UPDATE jobs SET status = 'closed', updated_at = now()
		 WHERE status = 'open' AND expires_at IS NOT NULL AND expires_at <= $1`,
		now,
	)
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var budgetType, level, status string
	var skills, questions []string

	err := row.Scan(
		&j.ID, &j.PosterID, &j.CategoryID, &j.CategoryName,
		&j.Title, &j.Description, &budgetType, &j.BudgetMin, &j.BudgetMax, &j.Currency,
		&level, &skills, &j.IsRemote, &j.LocationPreference, &j.Duration,
		&questions, &status, &j.ApplicationsCount, &j.ExpiresAt, &j.CreatedAt,
		&j.Poster.FullName, &j.Poster.CompanyName, &j.Poster.Location, &j.Poster.IsVerified,
	)
	if err != nil {
		return job.Job{}, err
	}

	j.BudgetType = job.BudgetType(budgetType)
	j.ExperienceLevel = job.ExperienceLevel(level)
	j.Status = job.Status(status)
	j.SkillsRequired = skills
	j.ScreeningQuestions = questions
	return j, nil
}
