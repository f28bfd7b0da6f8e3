package seeder

import (
	"context"

	"workspark/internal/database"
)

// SkillsSeeder loads the posting-form skill catalog from skills.yaml.
type SkillsSeeder struct {
	Dir string
}

func (SkillsSeeder) Name() string { return "skills" }

func (s SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}

	items, err := LoadSkills(s.Dir)
	if err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range items {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
				it.Name,
				it.Category,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
