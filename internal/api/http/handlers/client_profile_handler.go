package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare/clinic-service/internal/api/dto"
	"github.com/vetcare/clinic-service/internal/service"
	"github.com/vetcare/clinic-service/internal/validation"
	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// ClientProfileHandler is the self-service account view and edit.
type ClientProfileHandler struct {
	portal   *service.PortalService
	validate *validation.Validator
}

// NewClientProfileHandler constructs handler.
func NewClientProfileHandler(portal *service.PortalService, validate *validation.Validator) *ClientProfileHandler {
	return &ClientProfileHandler{portal: portal, validate: validate}
}

// Get handles GET /client/perfil.
func (h *ClientProfileHandler) Get(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	profile, err := h.portal.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// Update handles PUT /client/perfil.
func (h *ClientProfileHandler) Update(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Cuerpo inválido", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	if err := h.portal.UpdateProfile(c.Context(), userID, req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Perfil actualizado exitosamente"})
}
