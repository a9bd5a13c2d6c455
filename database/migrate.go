package database

import (
	"supplier-app/config"
	"supplier-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Supplier{},
		&models.Order{},
		&models.GateState{},
	); err != nil {
		return err
	}

	return addTotalAmountColumn(db)
}

// total_amount is computed by the database, not by application code.
// AutoMigrate skips the field, the generated column is added here per driver.
func addTotalAmountColumn(db *gorm.DB) error {
	if db.Migrator().HasColumn(&models.Order{}, "total_amount") {
		return nil
	}

	switch config.DBDriver {
	case "postgres":
		return db.Exec("ALTER TABLE orders ADD COLUMN total_amount DECIMAL(14,2) GENERATED ALWAYS AS (unit_price * quantity) STORED").Error
	case "mysql":
		return db.Exec("ALTER TABLE orders ADD COLUMN total_amount DECIMAL(14,2) AS (unit_price * quantity) STORED").Error
	case "mssql":
		return db.Exec("ALTER TABLE orders ADD total_amount AS (unit_price * quantity) PERSISTED").Error
	}
	return nil
}
