package seeder

import (
	"context"

	"workspark/internal/database"
)

// CategoriesSeeder loads job categories from categories.yaml. Existing rows
// keep their id; description and icon are refreshed.
type CategoriesSeeder struct {
	Dir string
}

func (CategoriesSeeder) Name() string { return "job_categories" }

func (s CategoriesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_categories", "id", "name", "description", "icon_url", "parent_id", "is_active"); err != nil {
		return err
	}

	items, err := LoadCategories(s.Dir)
	if err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range items {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO job_categories (id, name, description, icon_url, parent_id)
				 VALUES (gen_random_uuid(), $1, NULLIF($2, ''), NULLIF($3, ''),
				         (SELECT id FROM job_categories WHERE name = NULLIF($4, '')))
				 ON CONFLICT (name) DO UPDATE
				 SET description = EXCLUDED.description, icon_url = EXCLUDED.icon_url, parent_id = EXCLUDED.parent_id`,
				it.Name,
				it.Description,
				it.IconURL,
				it.Parent,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
