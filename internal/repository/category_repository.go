package repository

import (
	"context"
	"errors"

	"workspark/internal/database"
	"workspark/internal/domain/category"

	"github.com/google/uuid"
)

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]category.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (category.Category, error)
	// GetByName matches the name case-insensitively.
	GetByName(ctx context.Context, name string) (category.Category, error)
}

type PostgresCategoryRepository struct {
	db database.DB
}

func NewPostgresCategoryRepository(db database.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

const categoryColumns = `id, name, description, icon_url, parent_id, is_active, created_at`

func (r *PostgresCategoryRepository) ListActive(ctx context.Context) ([]category.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+categoryColumns+` FROM job_categories WHERE is_active = true ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]category.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (category.Category, error) {
	row := r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM job_categories WHERE id = $1`, id)
	return scanCategoryOrNotFound(row)
}

func (r *PostgresCategoryRepository) GetByName(ctx context.Context, name string) (category.Category, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM job_categories WHERE name ILIKE $1 ORDER BY is_active DESC, created_at ASC LIMIT 1`,
		escapeLike(name),
	)
	return scanCategoryOrNotFound(row)
}

func scanCategoryOrNotFound(row database.Row) (category.Category, error) {
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return category.Category{}, category.ErrNotFound
		}
		return category.Category{}, err
	}
	return c, nil
}

func scanCategory(row database.Row) (category.Category, error) {
	var c category.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.IconURL, &c.ParentID, &c.IsActive, &c.CreatedAt); err != nil {
		return category.Category{}, err
	}
	return c, nil
}
