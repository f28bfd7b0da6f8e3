package v1

import (
	"workspark/internal/delivery/http/handler"
	"workspark/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Handlers carries everything the v1 API mounts. Nil handlers are skipped.
type Handlers struct {
	Auth       *handler.AuthHandler
	Users      *handler.UserHandler
	Jobs       *handler.JobsHandler
	Categories *handler.CategoryHandler
	Talents    *handler.TalentHandler
	Skills     *handler.SkillHandler

	AuthMiddleware  *middleware.AuthMiddleware
	PostJobsLimiter *middleware.RateLimitMiddleware

	// JobsWS upgrades a listing session.
	JobsWS fiber.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
	if h.Categories != nil {
		h.Categories.RegisterRoutes(r)
	}
	if h.Talents != nil {
		h.Talents.RegisterRoutes(r)
	}
	if h.Skills != nil {
		h.Skills.RegisterRoutes(r)
	}
	if h.JobsWS != nil {
		r.Get("/ws/jobs", h.JobsWS)
	}

	RegisterJobs(r.Group("/jobs"), h)

	if h.AuthMiddleware != nil {
		RegisterUsers(r.Group("/users", h.AuthMiddleware.Middleware()), h.Users)
	}
}
