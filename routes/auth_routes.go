package routes

import (
	"supplier-app/config"
	"supplier-app/controllers"
	"supplier-app/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, gate *services.GateService) {
	authController := controllers.NewAuthController(gate)
	api := app.Group(config.MAIN_ROUTES + "/auth")

	api.Post("/login", authController.Login)
	api.Get("/status", authController.Status)
	api.Post("/logout", authController.Logout)
}
