package routes

import (
	"supplier-app/config"
	"supplier-app/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupFileRoutes(app *fiber.App, db *gorm.DB) {
	fileController := controllers.NewFileController(db)
	api := app.Group(config.MAIN_ROUTES + "/files")

	api.Get("/download/:filename", fileController.DownloadContract)
	api.Get("/view/:filename", fileController.ViewContract)
}
