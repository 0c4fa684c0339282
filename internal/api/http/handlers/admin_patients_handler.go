package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/vetcare/clinic-service/internal/api/dto"
	"github.com/vetcare/clinic-service/internal/domain"
	"github.com/vetcare/clinic-service/internal/repository"
	"github.com/vetcare/clinic-service/internal/validation"
	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// AdminPatientsHandler is the back-office pet CRUD.
type AdminPatientsHandler struct {
	patients repository.PatientRepository
	validate *validation.Validator
}

// NewAdminPatientsHandler constructs handler.
func NewAdminPatientsHandler(patients repository.PatientRepository, validate *validation.Validator) *AdminPatientsHandler {
	return &AdminPatientsHandler{patients: patients, validate: validate}
}

// List handles GET /admin/pacientes?q=.
func (h *AdminPatientsHandler) List(c *fiber.Ctx) error {
	patients, err := h.patients.List(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(patients)
}

// Create handles POST /admin/pacientes.
func (h *AdminPatientsHandler) Create(c *fiber.Ctx) error {
	var req dto.PatientCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Cuerpo inválido", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	patient := &domain.Patient{
		UserID:  req.IDUsuario.Int(),
		Nombre:  req.Nombre,
		Especie: req.Especie,
		Raza:    req.Raza,
		Edad:    int(req.Edad.Int()),
		Peso:    req.Peso.Float(),
	}
	if err := h.patients.Create(c.Context(), patient); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "Creado"})
}

// Update handles PUT /admin/pacientes/:id.
func (h *AdminPatientsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.PatientUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Cuerpo inválido", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	if err := h.patients.Update(c.Context(), id, req.Fields()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Actualizado"})
}

// Delete handles DELETE /admin/pacientes/:id.
func (h *AdminPatientsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.patients.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Eliminado"})
}
