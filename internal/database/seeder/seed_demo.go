package seeder

import (
	"context"
	"fmt"

	"workspark/internal/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DemoSeeder loads demo.yaml: buyer and talent accounts with profiles, talent
// listings and open jobs. Rows that already exist are left alone, so it can
// run on every deploy of a development stack.
type DemoSeeder struct {
	Dir string
}

func (DemoSeeder) Name() string { return "demo" }

func (s DemoSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "profiles", "id", "user_id", "email", "user_type", "full_name", "company_name", "location", "is_verified"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "talent_profiles", "profile_id", "headline", "hourly_rate", "rating", "skills", "total_jobs", "experience_level"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "jobs", "poster_id", "category_id", "title", "description", "budget_type", "budget_min", "budget_max",
		"currency", "duration", "experience_level", "skills_required", "location_preference", "is_remote", "screening_questions", "status"); err != nil {
		return err
	}

	data, err := LoadDemo(s.Dir)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		posters := map[string]uuid.UUID{}
		for _, b := range data.Buyers {
			id, err := upsertAccount(ctx, tx, b.Email, string(hash), "buyer", b.FullName, b.CompanyName, b.Location, b.Verified)
			if err != nil {
				return err
			}
			posters[b.Email] = id
		}

		for _, t := range data.Talents {
			profileID, err := upsertAccount(ctx, tx, t.Email, string(hash), "talent", t.FullName, "", t.Location, t.Verified)
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx,
				`INSERT INTO talent_profiles (profile_id, headline, hourly_rate, rating, skills, total_jobs, experience_level)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)
				 ON CONFLICT (profile_id) DO NOTHING`,
				profileID, t.Headline, t.HourlyRate, t.Rating, t.Skills, t.TotalJobs, t.ExperienceLevel,
			)
			if err != nil {
				return fmt.Errorf("seed talent %s: %w", t.Email, err)
			}
		}

		for _, j := range data.Jobs {
			posterID := posters[j.Poster]
			exists, err := jobExists(ctx, tx, posterID, j.Title)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			var categoryID uuid.UUID
			if err := tx.QueryRow(ctx, `SELECT id FROM job_categories WHERE name = $1`, j.Category).Scan(&categoryID); err != nil {
				return fmt.Errorf("seed job %q: category %q: %w", j.Title, j.Category, err)
			}

			_, err = tx.Exec(ctx,
				`INSERT INTO jobs (
					poster_id, category_id, title, description, budget_type, budget_min, budget_max,
					currency, duration, experience_level, skills_required, location_preference,
					is_remote, screening_questions, status
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, NULLIF($12, ''), $13, $14, 'open')`,
				posterID, categoryID, j.Title, j.Description, j.BudgetType, j.BudgetMin, j.BudgetMax,
				j.Currency, j.Duration, j.ExperienceLevel, j.Skills, j.LocationPreference,
				*j.Remote, j.ScreeningQuestions,
			)
			if err != nil {
				return fmt.Errorf("seed job %q: %w", j.Title, err)
			}
		}
		return nil
	})
}

// upsertAccount creates the user and profile when missing and returns the
// profile id.
func upsertAccount(ctx context.Context, tx database.Tx, email, hash, userType, fullName, company, location string, verified bool) (uuid.UUID, error) {
	_, err := tx.Exec(ctx,
		`INSERT INTO users (email, password_hash) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING`,
		email, hash,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("seed user %s: %w", email, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO profiles (user_id, email, user_type, full_name, company_name, location, is_verified)
		 SELECT id, email, $2::text, NULLIF($3::text, ''), NULLIF($4::text, ''), NULLIF($5::text, ''), $6::boolean FROM users WHERE email = $1
		 ON CONFLICT (user_id) DO NOTHING`,
		email, userType, fullName, company, location, verified,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("seed profile %s: %w", email, err)
	}

	var id uuid.UUID
	if err := tx.QueryRow(ctx, `SELECT p.id FROM profiles p JOIN users u ON u.id = p.user_id WHERE u.email = $1`, email).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("seed profile %s: %w", email, err)
	}
	return id, nil
}

func jobExists(ctx context.Context, tx database.Tx, posterID uuid.UUID, title string) (bool, error) {
	var n int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM jobs WHERE poster_id = $1 AND title = $2`, posterID, title).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
