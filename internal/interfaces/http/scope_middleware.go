package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ticketera/internal/application/dto"
)

// RequireScope devuelve un middleware Fiber que verifica que el token conceda
// el scope. Debe usarse DESPUÉS de AuthMiddleware (necesita los claims).
//
// Comportamiento:
//   - 401 Unauthorized → no hay claims en el contexto.
//   - 403 Forbidden    → el token no concede el scope.
func RequireScope(scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := getClaims(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "claims no encontrados en el contexto",
			})
		}
		if !claims.Has(scope) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el token no concede '" + scope + "'",
			})
		}
		return c.Next()
	}
}
