package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare/clinic-service/internal/service"
)

// ClientPortalHandler serves the aggregate portal views: dashboard, the
// service catalog and the caller's payments.
type ClientPortalHandler struct {
	portal *service.PortalService
}

// NewClientPortalHandler constructs handler.
func NewClientPortalHandler(portal *service.PortalService) *ClientPortalHandler {
	return &ClientPortalHandler{portal: portal}
}

// Dashboard handles GET /client/dashboard.
func (h *ClientPortalHandler) Dashboard(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	dashboard, err := h.portal.GetDashboard(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dashboard)
}

// Services handles GET /client/servicios.
func (h *ClientPortalHandler) Services(c *fiber.Ctx) error {
	services, err := h.portal.ListServices(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(services)
}

// Payments handles GET /client/pagos.
func (h *ClientPortalHandler) Payments(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	payments, err := h.portal.ListPayments(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(payments)
}
