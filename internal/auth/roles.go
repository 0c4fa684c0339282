package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare/clinic-service/internal/domain"
	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// RequireRole ensures the authenticated caller carries exactly the given role.
// The check is strict equality: admin does not satisfy a cliente-only route.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("No autorizado")
		}
		if claims.Rol != required {
			return apperrors.NewForbidden("Requiere rol " + string(required))
		}
		return c.Next()
	}
}
