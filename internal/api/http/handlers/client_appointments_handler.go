package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vetcare/clinic-service/internal/api/dto"
	"github.com/vetcare/clinic-service/internal/service"
	"github.com/vetcare/clinic-service/internal/validation"
	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// ClientAppointmentsHandler lets a client view and book appointments.
type ClientAppointmentsHandler struct {
	portal   *service.PortalService
	validate *validation.Validator
}

// NewClientAppointmentsHandler constructs handler.
func NewClientAppointmentsHandler(portal *service.PortalService, validate *validation.Validator) *ClientAppointmentsHandler {
	return &ClientAppointmentsHandler{portal: portal, validate: validate}
}

// List handles GET /client/citas.
func (h *ClientAppointmentsHandler) List(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	appointments, err := h.portal.ListAppointments(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(appointments)
}

// Create handles POST /client/citas. Bookings always start pendiente.
func (h *ClientAppointmentsHandler) Create(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.ClientAppointmentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Cuerpo inválido", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	id, err := h.portal.BookAppointment(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Cita agendada exitosamente",
		"id":      id,
	})
}
