package main

import (
	"os"
	"path/filepath"
	"time"

	"supplier-app/config"
	"supplier-app/controllers/idgen"
	"supplier-app/database"
	"supplier-app/routes"
	"supplier-app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	config.LoadConfig()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// Money fields serialize as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	database.EnsureDatabaseExists(config.DBName)

	db, err := database.GetDBConnection(config.DBName)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.Migrate(db); err != nil {
		zlog.Fatal().Err(err).Msg("failed to auto migrate")
	}

	idgen.Init()

	if err := os.MkdirAll(filepath.Join(config.UploadDir, "contracts"), 0o755); err != nil {
		zlog.Fatal().Err(err).Msg("failed to create upload directory")
	}

	app := fiber.New(fiber.Config{
		// Room for the 5 MiB contract PDF plus the rest of the form
		BodyLimit: int(config.MaxUploadSize) + 1024*1024,
	})

	config.SetupCORS(app)

	gate := services.NewGateService(services.NewGormStore(db))

	routes.SetupAuthRoutes(app, gate)
	routes.SetupSupplierRoutes(app, db, gate)
	routes.SetupOrderRoutes(app, db)
	routes.SetupFileRoutes(app, db)
	routes.SetupHealthRoutes(app)

	zlog.Info().Str("port", config.APP_PORT).Str("env", config.AppEnv).Msg("server listening")

	if err := app.Listen(":" + config.APP_PORT); err != nil {
		zlog.Fatal().Err(err).Msg("server stopped")
	}
}
