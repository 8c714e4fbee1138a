package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/freelansy/freelansy/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func gateApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Use(RouteGate(cfg))
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/", ok)
	app.Get("/signin", ok)
	app.Get("/signup", ok)
	app.Get("/dashboard", ok)
	app.Get("/missions", ok)
	app.Get("/api/health", ok)
	app.Get("/api/private", ok)
	return app
}

func gateConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "gate-secret",
		SessionCookie: "freelansy_session",
	}
}

func forgeSession(t *testing.T, secret string) *http.Cookie {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "9f1c6a2e-0000-4000-8000-000000000001",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return &http.Cookie{Name: "freelansy_session", Value: raw}
}

func gateGet(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestGateRedirectsAnonymousPages(t *testing.T) {
	cfg := gateConfig()
	app := gateApp(cfg)

	resp := gateGet(t, app, "/dashboard", nil)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/signin?callbackUrl=%2Fdashboard" {
		t.Errorf("location = %q", loc)
	}
}

func TestGatePreservesQueryInCallback(t *testing.T) {
	cfg := gateConfig()
	app := gateApp(cfg)

	resp := gateGet(t, app, "/missions?status=paid", nil)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/signin?callbackUrl=%2Fmissions%3Fstatus%3Dpaid" {
		t.Errorf("location = %q", loc)
	}
}

func TestGateRejectsAnonymousAPI(t *testing.T) {
	cfg := gateConfig()
	app := gateApp(cfg)

	resp := gateGet(t, app, "/api/private", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestGatePublicPaths(t *testing.T) {
	cfg := gateConfig()
	app := gateApp(cfg)

	for _, path := range []string{"/", "/api/health", "/signin", "/signup"} {
		resp := gateGet(t, app, path, nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, resp.StatusCode)
		}
	}
}

func TestGateBouncesLoggedInFromAuthPages(t *testing.T) {
	cfg := gateConfig()
	app := gateApp(cfg)
	cookie := forgeSession(t, cfg.JWTSecret)

	for _, path := range []string{"/signin", "/signup"} {
		resp := gateGet(t, app, path, cookie)
		if resp.StatusCode != http.StatusSeeOther {
			t.Errorf("GET %s = %d, want 303", path, resp.StatusCode)
			continue
		}
		if loc := resp.Header.Get("Location"); loc != "/dashboard" {
			t.Errorf("GET %s location = %q", path, loc)
		}
	}
}

func TestGateAllowsLoggedInEverywhere(t *testing.T) {
	cfg := gateConfig()
	app := gateApp(cfg)
	cookie := forgeSession(t, cfg.JWTSecret)

	for _, path := range []string{"/dashboard", "/missions", "/api/private"} {
		resp := gateGet(t, app, path, cookie)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, resp.StatusCode)
		}
	}
}

func TestGateIgnoresForgedCookie(t *testing.T) {
	cfg := gateConfig()
	app := gateApp(cfg)
	cookie := forgeSession(t, "some-other-secret")

	resp := gateGet(t, app, "/dashboard", cookie)
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("status = %d, want redirect for invalid token", resp.StatusCode)
	}
}
