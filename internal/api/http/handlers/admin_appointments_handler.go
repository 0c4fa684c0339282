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

// AdminAppointmentsHandler is the back-office appointment CRUD. The admin may
// set any status; overlapping schedules are accepted.
type AdminAppointmentsHandler struct {
	appointments repository.AppointmentRepository
	validate     *validation.Validator
}

// NewAdminAppointmentsHandler constructs handler.
func NewAdminAppointmentsHandler(appointments repository.AppointmentRepository, validate *validation.Validator) *AdminAppointmentsHandler {
	return &AdminAppointmentsHandler{appointments: appointments, validate: validate}
}

// List handles GET /admin/citas?q=.
func (h *AdminAppointmentsHandler) List(c *fiber.Ctx) error {
	appointments, err := h.appointments.List(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(appointments)
}

// Create handles POST /admin/citas.
func (h *AdminAppointmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.AppointmentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Cuerpo inválido", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}
	fecha, err := req.FechaCita.Time()
	if err != nil {
		return apperrors.NewValidationError("Datos inválidos", map[string]any{"fecha_cita": []string{"invalid datetime"}})
	}

	appointment := &domain.Appointment{
		UserID:    req.IDUsuario.Int(),
		PatientID: req.IDPaciente.Int(),
		ServiceID: req.IDServicio.Int(),
		FechaCita: fecha,
		Estado:    domain.AppointmentStatus(req.Estado),
	}
	if err := h.appointments.Create(c.Context(), appointment); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "Creado"})
}

// Update handles PUT /admin/citas/:id.
func (h *AdminAppointmentsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.AppointmentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Cuerpo inválido", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	if err := h.appointments.Update(c.Context(), id, req.Fields()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Actualizado"})
}

// Delete handles DELETE /admin/citas/:id.
func (h *AdminAppointmentsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.appointments.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Eliminado"})
}
