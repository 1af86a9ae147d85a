package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fitness-tracker/internal/service"
)

// ReportsHandler serves workout aggregates and chart exports.
type ReportsHandler struct {
	stats *service.StatsService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(statsService *service.StatsService) *ReportsHandler {
	return &ReportsHandler{stats: statsService}
}

// Summary GET /reports/workout-summary.
func (h *ReportsHandler) Summary(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	summary, err := h.stats.Summary(c.Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

// ProgressChart GET /reports/progress-chart.
func (h *ReportsHandler) ProgressChart(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	png, err := h.stats.ProgressChart(c.Context(), principal)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
