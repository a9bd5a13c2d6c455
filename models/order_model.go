package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusIncomplete = "incomplete"
	OrderStatusComplete   = "complete"
)

type Order struct {
	ID                   uint            `json:"id" gorm:"primaryKey"`
	SupplierID           uint            `json:"supplier_id" gorm:"not null;index"`
	OrderContact         string          `json:"order_contact" gorm:"not null"`
	ProductName          string          `json:"product_name" gorm:"not null"`
	OrderDate            time.Time       `json:"order_date" gorm:"type:date;not null"`
	UnitPrice            decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,2);not null"`
	Quantity             int             `json:"quantity" gorm:"not null"`
	// maintained by the database as unit_price * quantity, see database.Migrate
	TotalAmount          decimal.Decimal `json:"total_amount" gorm:"->;-:migration"`
	ExpectedDeliveryDate *time.Time      `json:"expected_delivery_date" gorm:"type:date"`
	Status               string          `json:"status" gorm:"size:20;default:incomplete;index"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// OrderWithSupplier is the listing/detail row shape, joined with the
// referencing supplier's company name.
type OrderWithSupplier struct {
	Order       `gorm:"embedded"`
	CompanyName string `json:"company_name"`
}

func ValidOrderStatus(status string) bool {
	return status == OrderStatusIncomplete || status == OrderStatusComplete
}
