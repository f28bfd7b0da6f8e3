package app

import (
	"context"
	"errors"
	"log"
	"time"

	"workspark/internal/config"
	"workspark/internal/database"
	dbpostgres "workspark/internal/database/postgres"
	"workspark/internal/infrastructure/cache"
	"workspark/internal/pkg/jwt"
	"workspark/internal/repository"
	"workspark/internal/scheduler"
	"workspark/internal/usecase"
	jobuc "workspark/internal/usecase/job"
	useruc "workspark/internal/usecase/user"
	"workspark/internal/ws"
)

// Container owns every long-lived dependency of the server process.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	JWT   jwt.Service
	Hub   *ws.Hub

	Jobs       *repository.PostgresJobRepository
	Categories *repository.PostgresCategoryRepository
	Talents    *repository.PostgresTalentRepository
	Skills     *repository.PostgresSkillRepository
	Users      *repository.PostgresUserRepository
	Profiles   *repository.PostgresProfileRepository

	// JobSource is the cached store fetch shared by HTTP listings and
	// WebSocket sessions.
	JobSource *usecase.CachedJobSource

	AuthUC     *usecase.Auth
	MeUC       *useruc.Service
	JobListUC  *usecase.JobList
	JobPostUC  *usecase.JobPost
	CategoryUC *usecase.Category
	TalentUC   *usecase.Talent
	SkillUC    *usecase.Skill
	Expiry     *jobuc.ExpiryService

	Scheduler *scheduler.Scheduler
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	logger.Printf("[DB] Connected host=%s db=%s", cfg.Database.DBHost, cfg.Database.DBName)

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		JWT: jwt.NewHMACService(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		),
		Hub: ws.NewHub(logger),
	}

	c.Jobs = repository.NewPostgresJobRepository(db)
	c.Categories = repository.NewPostgresCategoryRepository(db)
	c.Talents = repository.NewPostgresTalentRepository(db)
	c.Skills = repository.NewPostgresSkillRepository(db)
	c.Users = repository.NewPostgresUserRepository(db)
	c.Profiles = repository.NewPostgresProfileRepository(db)

	c.JobSource = usecase.NewCachedJobSource(c.Jobs, c.Cache, logger)

	c.AuthUC = usecase.NewAuthUsecase(c.Users, c.Profiles, c.JWT)
	c.MeUC = useruc.NewService(c.Users, c.Profiles)
	c.JobListUC = usecase.NewJobListUsecase(c.JobSource, c.Jobs, logger)
	c.JobPostUC = usecase.NewJobPostUsecase(c.Jobs, c.Categories, c.Profiles, c.Cache, c.Hub, logger)
	c.CategoryUC = usecase.NewCategoryUsecase(c.Categories, c.Jobs, c.Talents, logger)
	c.TalentUC = usecase.NewTalentUsecase(c.Talents)
	c.SkillUC = usecase.NewSkillUsecase(c.Skills)
	c.Expiry = jobuc.NewExpiryService(c.Jobs, c.Cache, c.Hub, logger)

	if spec := cfg.Scheduler.ExpirySpec; spec != "" {
		c.Scheduler = scheduler.New(spec, c.Expiry, logger)
	}

	return c, nil
}

// Start launches the background loops; they stop when ctx is done.
func (c *Container) Start(ctx context.Context) error {
	go c.Hub.Run(ctx)
	if c.Scheduler != nil {
		if err := c.Scheduler.Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
