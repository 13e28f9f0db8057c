package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pixelcraft/agency-backoffice/internal/persistence"
)

// HealthHandler exposes liveness and readiness endpoints.
type HealthHandler struct {
	pg    *persistence.Postgres
	redis *persistence.Redis
}

// NewHealthHandler constructs handler.
func NewHealthHandler(pg *persistence.Postgres, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{pg: pg, redis: redis}
}

// Live GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready GET /health/ready.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	checks := fiber.Map{}
	healthy := true

	if err := h.pg.Ping(c.UserContext()); err != nil {
		checks["postgres"] = err.Error()
		healthy = false
	} else {
		checks["postgres"] = "ok"
	}
	if err := h.redis.Ping(c.UserContext()); err != nil {
		checks["redis"] = err.Error()
	} else {
		checks["redis"] = "ok"
	}

	status := fiber.StatusOK
	if !healthy {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"checks": checks})
}
