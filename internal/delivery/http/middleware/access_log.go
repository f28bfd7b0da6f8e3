package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

type AccessLogMiddleware struct {
	logger *log.Logger
	now    func() time.Time
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger, now: time.Now}
}

// Middleware logs one line per request once the handler chain has finished.
// The route is the registered pattern (/api/v1/jobs/:id), so lines for the
// same endpoint group together; user is "-" for anonymous callers.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := m.now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)

		err := c.Next()

		user := "-"
		if id, ok := UserID(c); ok {
			user = id.String()
		}
		route := c.Route().Path
		if route == "" {
			route = "-"
		}

		m.logger.Printf(
			"[HTTP] rid=%s %s route=%s path=%s status=%d took=%s user=%s ip=%s",
			rid, c.Method(), route, c.Path(), c.Response().StatusCode(), m.now().Sub(start), user, c.IP(),
		)
		return err
	}
}
