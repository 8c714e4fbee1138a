package routes

import (
	"time"

	"github.com/freelansy/freelansy/internal/config"
	"github.com/freelansy/freelansy/internal/handlers"
	"github.com/freelansy/freelansy/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	clientHandler *handlers.ClientHandler,
	missionHandler *handlers.MissionHandler,
	userHandler *handlers.UserHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/check-email", authHandler.CheckEmail)

	// Protected routes (valid session cookie required) - apply middleware to
	// individual routes so the session check never touches the public ones
	protected := middleware.Protected(cfg)

	api.Post("/auth/logout", protected, authHandler.Logout)
	api.Get("/auth/session", protected, authHandler.Session)

	clients := api.Group("/clients", protected)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	missions := api.Group("/missions", protected)
	missions.Get("/", missionHandler.List)
	missions.Post("/", missionHandler.Create)
	missions.Put("/:id", missionHandler.Update)
	missions.Delete("/:id", missionHandler.Delete)

	user := api.Group("/user", protected)
	user.Put("/profile", userHandler.UpdateProfile)
	user.Put("/password", userHandler.ChangePassword)

	api.Get("/dashboard", protected, dashboardHandler.Summary)
}
