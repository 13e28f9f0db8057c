package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pixelcraft/agency-backoffice/internal/scope"
	"github.com/pixelcraft/agency-backoffice/internal/service"
)

// DashboardHandler serves the workload counters.
type DashboardHandler struct {
	dashboard *service.DashboardService
	scopes    *scope.Resolver
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *service.DashboardService, scopes *scope.Resolver) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, scopes: scopes}
}

// Counts GET /admin/dashboard.
func (h *DashboardHandler) Counts(c *fiber.Ctx) error {
	sc := deriveScope(c, h.scopes)
	counts, err := h.dashboard.Counts(c.UserContext(), sc)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": counts})
}
