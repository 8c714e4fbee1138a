package middleware

import (
	"net/url"
	"strings"

	"github.com/freelansy/freelansy/internal/config"
	"github.com/freelansy/freelansy/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var authPages = []string{"/signin", "/signup"}

var publicPaths = []string{
	"/",
	"/api/health",
	"/api/auth/register",
	"/api/auth/login",
	"/api/auth/check-email",
}

var publicPrefixes = []string{"/static", "/api/public"}

// RouteGate is the central access-control layer. Auth pages bounce
// authenticated users to the dashboard; public paths always pass; any other
// API path without a session gets a 401, and any other page path is
// redirected to sign-in with the requested path preserved as callbackUrl.
func RouteGate(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		loggedIn := hasValidSession(c, cfg)

		if isAuthPage(path) {
			if loggedIn {
				return c.Redirect("/dashboard", fiber.StatusSeeOther)
			}
			return c.Next()
		}

		if isPublic(path) {
			return c.Next()
		}

		if loggedIn {
			return c.Next()
		}

		if strings.HasPrefix(path, "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized",
			})
		}

		target := path
		if q := string(c.Request().URI().QueryString()); q != "" {
			target += "?" + q
		}
		signIn := "/signin"
		if target != "" && target != "/" {
			signIn += "?callbackUrl=" + url.QueryEscape(target)
		}
		return c.Redirect(signIn, fiber.StatusSeeOther)
	}
}

func isAuthPage(path string) bool {
	for _, p := range authPages {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func isPublic(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// hasValidSession parses the session cookie without installing claims; the
// Protected middleware remains the authority for API handlers.
func hasValidSession(c *fiber.Ctx, cfg *config.Config) bool {
	raw := c.Cookies(cfg.SessionCookie)
	if raw == "" {
		return false
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	return err == nil && token.Valid
}
