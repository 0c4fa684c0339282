package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/vetcare/clinic-service/internal/api/dto"
	"github.com/vetcare/clinic-service/internal/domain"
	"github.com/vetcare/clinic-service/internal/repository"
	"github.com/vetcare/clinic-service/internal/validation"
	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// AdminUsersHandler is the back-office account CRUD.
type AdminUsersHandler struct {
	users    repository.UserRepository
	validate *validation.Validator
}

// NewAdminUsersHandler constructs handler.
func NewAdminUsersHandler(users repository.UserRepository, validate *validation.Validator) *AdminUsersHandler {
	return &AdminUsersHandler{users: users, validate: validate}
}

// List handles GET /admin/usuarios?q=.
func (h *AdminUsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// Create handles POST /admin/usuarios. The account gets an empty placeholder
// password, so it cannot log in until one is set.
func (h *AdminUsersHandler) Create(c *fiber.Ctx) error {
	var req dto.AdminUserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Cuerpo inválido", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	if _, err := h.users.GetByEmail(c.Context(), req.Email); err == nil {
		return apperrors.NewConflict("Email ya registrado")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	user := &domain.User{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Email:     req.Email,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
		Rol:       domain.Role(req.Rol),
	}
	if err := h.users.Create(c.Context(), user); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "Creado"})
}

// Update handles PUT /admin/usuarios/:id.
func (h *AdminUsersHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.AdminUserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Cuerpo inválido", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	if err := h.users.Update(c.Context(), id, req.Fields()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Actualizado"})
}

// Delete handles DELETE /admin/usuarios/:id. Deleting twice is a no-op.
func (h *AdminUsersHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.users.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Eliminado"})
}
