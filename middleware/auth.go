package middleware

import (
	"supplier-app/controllers"
	"supplier-app/services"

	"github.com/gofiber/fiber/v2"
)

// GateMiddleware rejects requests without a valid gate session token.
func GateMiddleware(gate *services.GateService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !gate.ValidateSession(controllers.SessionToken(ctx)) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "unauthorized",
			})
		}

		return ctx.Next()
	}
}
