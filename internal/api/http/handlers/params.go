package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/vetcare/clinic-service/internal/auth"
	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// pathID parses the :id route parameter.
func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("Id inválido", nil)
	}
	return id, nil
}

// callerID returns the user id carried by the authenticated token.
func callerID(c *fiber.Ctx) (int64, error) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return 0, apperrors.NewUnauthorized("No autorizado")
	}
	return claims.UserID, nil
}
