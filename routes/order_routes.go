package routes

import (
	"supplier-app/config"
	"supplier-app/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOrderRoutes(app *fiber.App, db *gorm.DB) {
	orderController := controllers.NewOrderController(db)
	api := app.Group(config.MAIN_ROUTES + "/orders")

	api.Post("/", orderController.CreateOrder)
	api.Get("/", orderController.GetOrders)
	api.Get("/:id", orderController.GetOrderDetail)
	api.Put("/:id/status", orderController.UpdateOrderStatus)
}
