package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vetcare/clinic-service/internal/api/dto"
	"github.com/vetcare/clinic-service/internal/cache"
	"github.com/vetcare/clinic-service/internal/domain"
	"github.com/vetcare/clinic-service/internal/repository"
	"github.com/vetcare/clinic-service/internal/validation"
	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// AdminServicesHandler is the back-office catalog CRUD. Writes invalidate the
// client-facing catalog cache.
type AdminServicesHandler struct {
	services repository.ServiceRepository
	catalog  *cache.CatalogCache
	validate *validation.Validator
}

// NewAdminServicesHandler constructs handler.
func NewAdminServicesHandler(services repository.ServiceRepository, catalog *cache.CatalogCache, validate *validation.Validator) *AdminServicesHandler {
	return &AdminServicesHandler{services: services, catalog: catalog, validate: validate}
}

// List handles GET /admin/servicios?q=.
func (h *AdminServicesHandler) List(c *fiber.Ctx) error {
	services, err := h.services.List(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(services)
}

// Create handles POST /admin/servicios.
func (h *AdminServicesHandler) Create(c *fiber.Ctx) error {
	var req dto.ServiceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Cuerpo inválido", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	svc := &domain.Service{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio.Float(),
	}
	if err := h.services.Create(c.Context(), svc); err != nil {
		return err
	}
	h.catalog.Invalidate(c.Context())
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "Creado"})
}

// Update handles PUT /admin/servicios/:id.
func (h *AdminServicesHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.ServiceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Cuerpo inválido", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}
	fields := req.Fields()
	if len(fields) == 0 {
		return apperrors.NewValidationError("No hay campos para actualizar", nil)
	}

	if err := h.services.Update(c.Context(), id, fields); err != nil {
		return err
	}
	h.catalog.Invalidate(c.Context())
	return c.JSON(fiber.Map{"message": "Actualizado"})
}

// Delete handles DELETE /admin/servicios/:id.
func (h *AdminServicesHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.services.Delete(c.Context(), id); err != nil {
		return err
	}
	h.catalog.Invalidate(c.Context())
	return c.JSON(fiber.Map{"message": "Eliminado"})
}
