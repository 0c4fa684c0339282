package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vetcare/clinic-service/internal/api/dto"
	"github.com/vetcare/clinic-service/internal/service"
	"github.com/vetcare/clinic-service/internal/validation"
	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// ClientExamsHandler lets a client view and request lab exams.
type ClientExamsHandler struct {
	portal   *service.PortalService
	validate *validation.Validator
}

// NewClientExamsHandler constructs handler.
func NewClientExamsHandler(portal *service.PortalService, validate *validation.Validator) *ClientExamsHandler {
	return &ClientExamsHandler{portal: portal, validate: validate}
}

// List handles GET /client/examenes.
func (h *ClientExamsHandler) List(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	exams, err := h.portal.ListExams(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(exams)
}

// Create handles POST /client/examenes. The referenced patient must belong to
// the caller; requests always start pendiente.
func (h *ClientExamsHandler) Create(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.ClientExamCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Cuerpo inválido", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	id, err := h.portal.RequestExam(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Examen solicitado exitosamente",
		"id":      id,
	})
}
