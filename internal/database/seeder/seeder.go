// Package seeder fills reference tables from YAML fixtures after migrations ran.
package seeder

import (
	"context"

	"workspark/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
