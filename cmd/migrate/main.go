package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"workspark/internal/config"
	"workspark/internal/database/migration"
	dbpostgres "workspark/internal/database/postgres"
	"workspark/internal/database/seeder"
)

func main() {
	seed := flag.Bool("seed", true, "run seeders after migrations")
	demo := flag.Bool("demo", false, "also load demo accounts, talents and jobs")
	migrationsDir := flag.String("migrations", "", "migrations directory (defaults to MIGRATIONS_DIR)")
	seedsDir := flag.String("seeds", "", "seed fixtures directory (defaults to SEEDS_DIR)")
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if *migrationsDir == "" {
		*migrationsDir = cfg.App.MigrationsDir
	}
	if *seedsDir == "" {
		*seedsDir = cfg.App.SeedsDir
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	r := migration.Runner{Dir: *migrationsDir, Logger: logger}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}

	if !*seed {
		return
	}
	seeders := seeder.Defaults(*seedsDir)
	if *demo {
		seeders = seeder.WithDemo(seeders, *seedsDir)
	}
	s := seeder.Runner{Seeders: seeders, Logger: logger}
	if err := s.Run(ctx, db); err != nil {
		logger.Fatalf("seeding failed: %v", err)
	}
}
