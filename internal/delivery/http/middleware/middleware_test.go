package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"workspark/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func newAuthApp(t *testing.T, logs *bytes.Buffer) (*fiber.App, *jwt.HMACService) {
	t.Helper()
	svc := jwt.NewHMACService("a-secret", "r-secret", time.Minute, time.Hour)
	auth := NewAuthMiddleware(svc)

	app := fiber.New()
	app.Use(NewAccessLogMiddleware(log.New(logs, "", 0)).Middleware())
	app.Use(NewErrorMiddleware(log.New(&bytes.Buffer{}, "", 0)).Middleware())
	app.Use(auth.Identify())

	whoami := func(c fiber.Ctx) error {
		if id, ok := UserID(c); ok {
			return c.SendString(id.String())
		}
		return c.SendString("anonymous")
	}
	app.Get("/public/:id", whoami)
	app.Get("/private", auth.Middleware(), whoami)
	return app, svc
}

func call(t *testing.T, app *fiber.App, path, authz string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authz != "" {
		req.Header.Set(fiber.HeaderAuthorization, authz)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	var b bytes.Buffer
	_, _ = b.ReadFrom(resp.Body)
	return resp.StatusCode, b.String()
}

func TestIdentify_AttachesCallerOnPublicRoutes(t *testing.T) {
	var logs bytes.Buffer
	app, svc := newAuthApp(t, &logs)
	user := uuid.New()
	access, _ := svc.GenerateAccessToken(user, "buyer@example.com")
	refresh, _ := svc.GenerateRefreshToken(user)

	if _, body := call(t, app, "/public/1", ""); body != "anonymous" {
		t.Fatalf("anonymous request resolved to %q", body)
	}
	if _, body := call(t, app, "/public/1", "Bearer "+access); body != user.String() {
		t.Fatalf("expected caller %s, got %q", user, body)
	}
	if status, body := call(t, app, "/public/1", "Bearer "+refresh); status != http.StatusOK || body != "anonymous" {
		t.Fatalf("refresh token must not identify a caller, got %d %q", status, body)
	}
	if status, body := call(t, app, "/public/1", "Bearer garbage"); status != http.StatusOK || body != "anonymous" {
		t.Fatalf("bad token on a public route must pass as anonymous, got %d %q", status, body)
	}
}

func TestMiddleware_RequiresCaller(t *testing.T) {
	var logs bytes.Buffer
	app, svc := newAuthApp(t, &logs)
	user := uuid.New()
	access, _ := svc.GenerateAccessToken(user, "")

	if status, _ := call(t, app, "/private", ""); status != http.StatusUnauthorized {
		t.Fatalf("missing token: status %d", status)
	}
	if status, _ := call(t, app, "/private", "Bearer garbage"); status != http.StatusUnauthorized {
		t.Fatalf("bad token: status %d", status)
	}
	if status, body := call(t, app, "/private", "Bearer "+access); status != http.StatusOK || body != user.String() {
		t.Fatalf("valid token: %d %q", status, body)
	}
}

func TestAccessLog_RouteAndCaller(t *testing.T) {
	var logs bytes.Buffer
	app, svc := newAuthApp(t, &logs)
	user := uuid.New()
	access, _ := svc.GenerateAccessToken(user, "")

	call(t, app, "/public/42", "Bearer "+access)
	line := logs.String()
	for _, want := range []string{"[HTTP]", "route=/public/:id", "path=/public/42", "status=200", "user=" + user.String()} {
		if !strings.Contains(line, want) {
			t.Fatalf("access log %q missing %q", line, want)
		}
	}

	logs.Reset()
	call(t, app, "/private", "")
	if line := logs.String(); !strings.Contains(line, "status=401") || !strings.Contains(line, "user=-") {
		t.Fatalf("unexpected access log %q", line)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"Basic abc":    "",
		"Bearer":       "",
		"":             "",
	}
	for in, want := range cases {
		got, ok := BearerToken(in)
		if got != want || ok != (want != "") {
			t.Fatalf("BearerToken(%q) = %q %v", in, got, ok)
		}
	}
}
