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

// AdminPaymentsHandler is the back-office payment CRUD.
type AdminPaymentsHandler struct {
	payments repository.PaymentRepository
	validate *validation.Validator
}

// NewAdminPaymentsHandler constructs handler.
func NewAdminPaymentsHandler(payments repository.PaymentRepository, validate *validation.Validator) *AdminPaymentsHandler {
	return &AdminPaymentsHandler{payments: payments, validate: validate}
}

// List handles GET /admin/pagos?q=.
func (h *AdminPaymentsHandler) List(c *fiber.Ctx) error {
	payments, err := h.payments.List(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(payments)
}

// Create handles POST /admin/pagos.
func (h *AdminPaymentsHandler) Create(c *fiber.Ctx) error {
	var req dto.PaymentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Cuerpo inválido", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}
	fecha, err := req.FechaPago.Time()
	if err != nil {
		return apperrors.NewValidationError("Datos inválidos", map[string]any{"fecha_pago": []string{"invalid datetime"}})
	}

	payment := &domain.Payment{
		AppointmentID: req.IDCita.Int(),
		MetodoPago:    domain.PaymentMethod(req.MetodoPago),
		Monto:         req.Monto.Float(),
		FechaPago:     fecha,
		Estado:        domain.PaymentStatus(req.Estado),
	}
	if err := h.payments.Create(c.Context(), payment); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "Creado"})
}

// Update handles PUT /admin/pagos/:id.
func (h *AdminPaymentsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.PaymentUpdateRequest
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

	if err := h.payments.Update(c.Context(), id, fields); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Actualizado"})
}

// Delete handles DELETE /admin/pagos/:id. A missing payment is a 404, unlike
// the unconditional deletes elsewhere.
func (h *AdminPaymentsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.payments.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Eliminado"})
}
