package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Health reports service status. db is nil when the catalog database is off.
func Health(source string, db HealthChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := fiber.Map{
			"status":    "ok",
			"service":   "movie-grid",
			"version":   "1.0.0",
			"source":    source,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		if db != nil {
			dbStatus := "healthy"
			if err := db.HealthCheck(c.UserContext()); err != nil {
				dbStatus = "unhealthy"
			}
			body["database"] = dbStatus
		}

		return c.JSON(body)
	}
}
