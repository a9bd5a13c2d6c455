package routes

import (
	"supplier-app/config"
	"supplier-app/controllers"
	"supplier-app/middleware"
	"supplier-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSupplierRoutes(app *fiber.App, db *gorm.DB, gate *services.GateService) {
	supplierController := controllers.NewSupplierController(db)
	api := app.Group(config.MAIN_ROUTES + "/suppliers")

	api.Get("/export", middleware.GateMiddleware(gate), supplierController.ExportSuppliers)
	api.Get("/search", supplierController.SearchSuppliers)
	api.Post("/", supplierController.CreateSupplier)
	api.Get("/", supplierController.GetAllSuppliers)
	api.Put("/:id", supplierController.UpdateSupplier)
	api.Delete("/:id", supplierController.DeleteSupplier)
}
