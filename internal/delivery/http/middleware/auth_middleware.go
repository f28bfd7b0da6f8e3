package middleware

import (
	"errors"
	"strings"

	"workspark/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"
)

// AuthMiddleware resolves the caller from an access token. Identify runs on
// every request and only attaches an identity; Middleware guards routes that
// need one (posting a job, /users/me).
type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware rejects the request with 401 unless a valid access token names
// the caller.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if _, ok := UserID(c); ok {
			return c.Next()
		}

		token, ok := BearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		claims, err := m.accessClaims(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		attach(c, claims)
		return c.Next()
	}
}

// Identify attaches the caller when a valid access token is present and lets
// anonymous or badly authenticated requests through untouched. The access log
// and the posting rate limiter key on what it resolves.
func (m *AuthMiddleware) Identify() fiber.Handler {
	return func(c fiber.Ctx) error {
		if token, ok := BearerToken(c.Get(fiber.HeaderAuthorization)); ok {
			if claims, err := m.accessClaims(token); err == nil {
				attach(c, claims)
			}
		}
		return c.Next()
	}
}

func (m *AuthMiddleware) accessClaims(token string) (jwt.Claims, error) {
	claims, err := m.jwt.ValidateToken(token)
	if err != nil {
		return jwt.Claims{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess || m.jwt.IsRefreshToken(claims) || claims.UserID == uuid.Nil {
		return jwt.Claims{}, jwt.ErrTokenInvalid
	}
	return claims, nil
}

func attach(c fiber.Ctx, claims jwt.Claims) {
	c.Locals(CtxUserIDKey, claims.UserID)
	c.Locals(CtxEmailKey, claims.Email)
}

// UserID returns the caller resolved for this request, if any.
func UserID(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) (string, bool) {
	scheme, tok, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tok = strings.TrimSpace(tok)
	return tok, tok != ""
}
