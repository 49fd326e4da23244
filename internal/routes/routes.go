package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/platewatch/platewatch/internal/config"
	"github.com/platewatch/platewatch/internal/handlers"
	"github.com/platewatch/platewatch/internal/middleware"
	"gorm.io/gorm"
)

// Setup mounts all routes at the root so the wire contract matches existing
// clients (no /api prefix).
func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	plateHandler *handlers.PlateHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limit: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	// Auth endpoints get a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	app.Post("/register", authLimiter, authHandler.Register)
	app.Post("/login", authLimiter, authHandler.Login)

	app.Post("/plates/check", middleware.JWTProtected(cfg), plateHandler.Check)
	app.Put("/plates/:id/status", middleware.JWTProtected(cfg), middleware.AdminRequired(db), plateHandler.SetStatus)
	app.Get("/history", middleware.JWTProtected(cfg), plateHandler.History)
}
