package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fitness-tracker/internal/persistence"
)

const probeTimeout = 2 * time.Second

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	postgres    *persistence.Postgres
	redis       *persistence.Redis
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, postgres *persistence.Postgres, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, postgres: postgres, redis: redis}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness. Postgres backs every fitness record, so
// its failure makes the service not ready; redis only backs the
// workout-summary cache, which the stats service tolerates losing, so a
// redis outage reports degraded instead of failing the probe.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	checks := fiber.Map{}

	pgErr := h.postgres.Ping(ctx)
	if pgErr != nil {
		checks["postgres"] = pgErr.Error()
	} else {
		checks["postgres"] = "ok"
	}

	redisErr := h.redis.Ping(ctx)
	if redisErr != nil {
		checks["redis"] = redisErr.Error()
	} else {
		checks["redis"] = "ok"
	}

	if pgErr != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "record store unavailable",
				"details": checks,
			},
		})
	}

	status := "ready"
	if redisErr != nil {
		status = "degraded"
	}
	return c.JSON(fiber.Map{
		"status": status,
		"checks": checks,
	})
}
