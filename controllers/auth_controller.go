package controllers

import (
	"fmt"
	"strings"
	"time"

	"supplier-app/config"
	"supplier-app/services"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Gate *services.GateService
}

func NewAuthController(gate *services.GateService) *AuthController {
	return &AuthController{Gate: gate}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Password string `json:"password"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request"})
	}
	if input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "password is required"})
	}

	result := c.Gate.Login(ctx.IP(), input.Password)

	if result.Success {
		ctx.Cookie(config.GetSessionCookie(result.Token, result.ExpiresAt))
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Login successful",
			"data": fiber.Map{
				"token":      result.Token,
				"expires_at": result.ExpiresAt,
			},
		})
	}

	if result.Locked {
		seconds := int(result.TimeLeft.Seconds())
		return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"success": false,
			"error":   fmt.Sprintf("too many failed attempts, try again in %d seconds", seconds),
		})
	}

	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   "invalid password",
		"data":    fiber.Map{"attempts": result.Attempts},
	})
}

func (c *AuthController) Status(ctx *fiber.Ctx) error {
	authenticated := c.Gate.ValidateSession(SessionToken(ctx))
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"authenticated": authenticated},
	})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	expired := config.GetSessionCookie("", time.Now().Add(-time.Hour))
	ctx.Cookie(expired)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Logout successful"})
}

// SessionToken pulls the gate token from the Authorization header or the
// session cookie.
func SessionToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	return ctx.Cookies("gate_token")
}
