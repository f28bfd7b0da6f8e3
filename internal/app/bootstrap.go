package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"workspark/internal/config"
	"workspark/internal/delivery/http/handler"
	"workspark/internal/delivery/http/middleware"
	"workspark/internal/delivery/http/routes"
	v1 "workspark/internal/delivery/http/routes/v1"
	"workspark/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the Fiber app over an already wired container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	auth := middleware.NewAuthMiddleware(c.JWT)
	registerGlobalMiddleware(f, auth, c.Logger)
	registerRoutes(f, c, auth)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires dependencies, starts background work and returns the app
// with a cleanup that stops everything in reverse order.
func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	if err := c.Start(runCtx); err != nil {
		cancel()
		_ = c.Close()
		return nil, nil, err
	}

	cleanup := func() error {
		cancel()
		return c.Close()
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, auth *middleware.AuthMiddleware, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	if auth != nil {
		app.Use(auth.Identify())
	}
}

func registerRoutes(app *fiber.App, c *Container, auth *middleware.AuthMiddleware) {
	if app == nil || c == nil {
		return
	}

	wsHandler := ws.NewHandler(c.Hub, c.JobSource, c.Config.App.Strict(), c.Logger)
	api := v1.Handlers{
		Auth:       handler.NewAuthHandler(c.AuthUC),
		Users:      handler.NewUserHandler(c.MeUC),
		Jobs:       handler.NewJobsHandler(c.JobListUC, c.JobPostUC),
		Categories: handler.NewCategoryHandler(c.CategoryUC),
		Talents:    handler.NewTalentHandler(c.TalentUC),
		Skills:     handler.NewSkillHandler(c.SkillUC),

		AuthMiddleware: auth,
		PostJobsLimiter: middleware.NewRateLimitMiddleware(
			c.Config.RateLimit.PostJobsPerMinute,
			c.Config.RateLimit.PostJobsBurst,
		),

		JobsWS: wsHandler.HandleJobsWS,
	}

	routes.NewRegistry(handler.NewHealthHandler(c.DB, c.Cache), api).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
