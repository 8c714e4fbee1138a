package handlers

import (
	"time"

	"github.com/freelansy/freelansy/internal/services"
	"github.com/freelansy/freelansy/internal/session"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	claims, err := session.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.dashboard.Summary(c.UserContext(), claims.UserID, time.Now())
	if err != nil {
		return serverError(c, "dashboard summary", err)
	}
	resp.Currency = claims.Currency
	return c.JSON(resp)
}
