package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vetcare/clinic-service/internal/api/dto"
	"github.com/vetcare/clinic-service/internal/service"
	"github.com/vetcare/clinic-service/internal/validation"
	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// ClientPetsHandler manages the caller's own pets.
type ClientPetsHandler struct {
	portal   *service.PortalService
	validate *validation.Validator
}

// NewClientPetsHandler constructs handler.
func NewClientPetsHandler(portal *service.PortalService, validate *validation.Validator) *ClientPetsHandler {
	return &ClientPetsHandler{portal: portal, validate: validate}
}

// List handles GET /client/mascotas.
func (h *ClientPetsHandler) List(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	pets, err := h.portal.ListPets(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(pets)
}

// Create handles POST /client/mascotas.
func (h *ClientPetsHandler) Create(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.ClientPetCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Cuerpo inválido", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	id, err := h.portal.AddPet(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Mascota registrada exitosamente",
		"id":      id,
	})
}

// Delete handles DELETE /client/mascotas/:id. A pet the caller does not own
// is indistinguishable from a missing one.
func (h *ClientPetsHandler) Delete(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	petID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.portal.DeletePet(c.Context(), userID, petID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Mascota eliminada exitosamente"})
}
