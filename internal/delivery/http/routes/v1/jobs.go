package v1

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterJobs mounts listing and detail publicly and posting behind auth
// and the per-caller limiter. Route handlers run in argument order.
func RegisterJobs(r fiber.Router, h Handlers) {
	if r == nil || h.Jobs == nil {
		return
	}

	if h.AuthMiddleware != nil {
		if h.PostJobsLimiter != nil {
			r.Post("/", h.AuthMiddleware.Middleware(), h.PostJobsLimiter.Middleware(), h.Jobs.HandlePostJob)
		} else {
			r.Post("/", h.AuthMiddleware.Middleware(), h.Jobs.HandlePostJob)
		}
	}

	h.Jobs.RegisterRoutes(r)
}
