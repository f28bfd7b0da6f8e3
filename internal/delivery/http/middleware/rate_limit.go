package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type keyLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles each caller with its own token bucket. The
// caller is the authenticated user when known, otherwise the client IP.
type RateLimitMiddleware struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu       sync.Mutex
	limiters map[string]*keyLimiter
	lastGC   time.Time
}

func NewRateLimitMiddleware(perMinute, burst int) *RateLimitMiddleware {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimitMiddleware{
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		now:      time.Now,
		limiters: make(map[string]*keyLimiter),
	}
}

func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		key := "ip:" + c.IP()
		if id, ok := UserID(c); ok {
			key = "user:" + id.String()
		}

		now := m.now()
		r := m.get(key).ReserveN(now, 1)
		if delay := r.DelayFrom(now); delay > 0 {
			r.CancelAt(now)
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(delay.Seconds())+1))
			return NewAppError(fiber.StatusTooManyRequests, "Too many requests", nil, nil)
		}
		return c.Next()
	}
}

func (m *RateLimitMiddleware) get(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastGC) > limiterIdleTTL {
		for k, l := range m.limiters {
			if now.Sub(l.lastSeen) > limiterIdleTTL {
				delete(m.limiters, k)
			}
		}
		m.lastGC = now
	}

	l, ok := m.limiters[key]
	if !ok {
		l = &keyLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.limiters[key] = l
	}
	l.lastSeen = now
	return l.limiter
}
