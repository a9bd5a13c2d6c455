package controllers

import (
	"errors"
	"strconv"

	"supplier-app/models"
	"supplier-app/repositories"
	"supplier-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderController struct {
	DB   *gorm.DB
	Repo *repositories.OrderRepository
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, Repo: repositories.NewOrderRepository(db)}
}

type orderInput struct {
	SupplierID           uint            `json:"supplier_id" validate:"required"`
	OrderContact         string          `json:"order_contact" validate:"required"`
	ProductName          string          `json:"product_name" validate:"required"`
	OrderDate            string          `json:"order_date" validate:"required"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	Quantity             int             `json:"quantity" validate:"required,gt=0"`
	ExpectedDeliveryDate string          `json:"expected_delivery_date"`
	Status               string          `json:"status"`
}

func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	var input orderInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "all required fields must be provided"})
	}

	if !input.UnitPrice.IsPositive() {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "unit price must be a positive number"})
	}

	orderDate, err := utils.ParseDate(input.OrderDate)
	if err != nil || orderDate == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid order date, expected yyyy-mm-dd"})
	}

	deliveryDate, err := utils.ParseDate(input.ExpectedDeliveryDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid expected delivery date, expected yyyy-mm-dd"})
	}

	status := input.Status
	if status == "" {
		status = models.OrderStatusIncomplete
	}
	if !models.ValidOrderStatus(status) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid status value"})
	}

	// The supplier must resolve before the write so the failure is the
	// specific not-found message rather than a constraint error.
	var supplier models.Supplier
	if err := c.DB.Select("id").First(&supplier, input.SupplierID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "supplier not found"})
		}
		log.Error().Err(err).Msg("failed to check supplier")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to create order"})
	}

	order := models.Order{
		SupplierID:           input.SupplierID,
		OrderContact:         input.OrderContact,
		ProductName:          input.ProductName,
		OrderDate:            *orderDate,
		UnitPrice:            input.UnitPrice,
		Quantity:             input.Quantity,
		ExpectedDeliveryDate: deliveryDate,
		Status:               status,
	}

	if err := c.Repo.Create(&order); err != nil {
		log.Error().Err(err).Msg("failed to create order")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to create order"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Order created successfully", "data": order})
}

func (c *OrderController) GetOrders(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))

	params := repositories.ListOrdersParams{
		Page:    page,
		Limit:   limit,
		Status:  ctx.Query("status"),
		Keyword: ctx.Query("keyword"),
	}
	params.Normalize()

	rows, total, err := c.Repo.List(params)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch orders")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to fetch orders"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"data":       rows,
			"total":      total,
			"page":       params.Page,
			"limit":      params.Limit,
			"totalPages": repositories.TotalPages(total, params.Limit),
		},
	})
}

func (c *OrderController) GetOrderDetail(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid ID"})
	}

	row, err := c.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "order not found"})
		}
		log.Error().Err(err).Msg("failed to fetch order")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to fetch order"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": row})
}

func (c *OrderController) UpdateOrderStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid ID"})
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if !models.ValidOrderStatus(input.Status) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid status value"})
	}

	if err := c.Repo.UpdateStatus(id, input.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "order not found"})
		}
		log.Error().Err(err).Msg("failed to update order status")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to update order status"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order status updated successfully"})
}
