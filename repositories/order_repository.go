package repositories

import (
	"strings"

	"supplier-app/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

type ListOrdersParams struct {
	Page    int
	Limit   int
	Status  string
	Keyword string
}

// Normalize coerces page and limit to positive values with the
// documented defaults (page 1, limit 10).
func (p *ListOrdersParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
}

func TotalPages(total int64, limit int) int64 {
	if limit < 1 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

// List returns one page of orders joined with the supplier's company name,
// plus the total count over the same predicates. A page past the end is not
// an error, it yields an empty slice with the correct total.
func (r *OrderRepository) List(p ListOrdersParams) ([]models.OrderWithSupplier, int64, error) {
	p.Normalize()

	query := r.filtered(p.Status, p.Keyword)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := []models.OrderWithSupplier{}
	err := query.
		Select("orders.*, suppliers.company_name").
		Order("orders.created_at DESC, orders.id DESC").
		Offset((p.Page - 1) * p.Limit).
		Limit(p.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// filtered composes the optional status and keyword predicates. The count
// query and the page query both run through here so total always matches
// the filtered set.
func (r *OrderRepository) filtered(status, keyword string) *gorm.DB {
	query := r.DB.Model(&models.Order{}).
		Joins("LEFT JOIN suppliers ON suppliers.id = orders.supplier_id")

	if status != "" && status != "all" {
		query = query.Where("orders.status = ?", status)
	}

	if keyword != "" {
		kw := "%" + strings.ToLower(keyword) + "%"
		query = query.Where("(LOWER(orders.product_name) LIKE ? OR LOWER(suppliers.company_name) LIKE ?)", kw, kw)
	}

	return query
}

func (r *OrderRepository) GetByID(id int) (*models.OrderWithSupplier, error) {
	var row models.OrderWithSupplier
	err := r.DB.Model(&models.Order{}).
		Select("orders.*, suppliers.company_name").
		Joins("LEFT JOIN suppliers ON suppliers.id = orders.supplier_id").
		Where("orders.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *OrderRepository) Create(order *models.Order) error {
	if err := r.DB.Create(order).Error; err != nil {
		return err
	}
	// total_amount is filled in by the database, read the row back
	return r.DB.First(order, order.ID).Error
}

func (r *OrderRepository) UpdateStatus(id int, status string) error {
	result := r.DB.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OrderRepository) CountBySupplier(supplierID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Order{}).Where("supplier_id = ?", supplierID).Count(&count).Error
	return count, err
}
