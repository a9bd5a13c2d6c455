package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"supplier-app/config"
	"supplier-app/controllers/idgen"
	"supplier-app/models"
	"supplier-app/repositories"
	"supplier-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type SupplierController struct {
	DB     *gorm.DB
	Orders *repositories.OrderRepository
}

func NewSupplierController(db *gorm.DB) *SupplierController {
	return &SupplierController{DB: db, Orders: repositories.NewOrderRepository(db)}
}

type supplierInput struct {
	CompanyName       string `json:"company_name" form:"company_name" validate:"required"`
	ContactPerson     string `json:"contact_person" form:"contact_person" validate:"required"`
	ContactPhone      string `json:"contact_phone" form:"contact_phone"`
	ContractStartDate string `json:"contract_start_date" form:"contract_start_date"`
	ContractEndDate   string `json:"contract_end_date" form:"contract_end_date"`
	LogisticsType     string `json:"logistics_type" form:"logistics_type"`
}

// applyInput validates the parsed form and copies it onto the supplier row.
// Returns a client-facing message when the input is rejected.
func applyInput(input supplierInput, supplier *models.Supplier) (string, bool) {
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return "company name and contact person are required", false
	}

	if input.ContactPhone != "" && !utils.IsValidPhone(input.ContactPhone) {
		return "invalid phone number format", false
	}

	startDate, err := utils.ParseDate(input.ContractStartDate)
	if err != nil {
		return "invalid contract start date, expected yyyy-mm-dd", false
	}
	endDate, err := utils.ParseDate(input.ContractEndDate)
	if err != nil {
		return "invalid contract end date, expected yyyy-mm-dd", false
	}

	logisticsType := input.LogisticsType
	if logisticsType == "" {
		logisticsType = models.LogisticsAttached
	}
	if logisticsType != models.LogisticsAttached && logisticsType != models.LogisticsIndependent {
		return "invalid logistics type", false
	}

	supplier.CompanyName = input.CompanyName
	supplier.ContactPerson = input.ContactPerson
	supplier.ContactPhone = input.ContactPhone
	supplier.ContractStartDate = startDate
	supplier.ContractEndDate = endDate
	supplier.LogisticsType = logisticsType
	return "", true
}

// validateContractFile enforces the PDF-only, 5 MiB upload contract before
// any record mutation happens.
func validateContractFile(file *multipart.FileHeader) (string, bool) {
	if file.Header.Get("Content-Type") != "application/pdf" {
		return "only PDF files are allowed", false
	}
	if file.Size > config.MaxUploadSize {
		return fmt.Sprintf("file exceeds the %d byte limit", config.MaxUploadSize), false
	}
	return "", true
}

func (c *SupplierController) saveContractFile(ctx *fiber.Ctx, file *multipart.FileHeader, supplier *models.Supplier) error {
	dir := filepath.Join(config.UploadDir, "contracts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	storedName := utils.GenerateStoredFilename("contract_file", file.Filename, idgen.GenerateID())
	if err := ctx.SaveFile(file, filepath.Join(dir, storedName)); err != nil {
		return err
	}

	now := time.Now()
	supplier.ContractFilePath = filepath.Join("contracts", storedName)
	supplier.ContractFileOriginalName = file.Filename
	supplier.ContractFileSize = file.Size
	supplier.ContractFileUploadTime = &now
	return nil
}

func (c *SupplierController) CreateSupplier(ctx *fiber.Ctx) error {
	var input supplierInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var supplier models.Supplier
	if msg, ok := applyInput(input, &supplier); !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": msg})
	}

	file, fileErr := ctx.FormFile("contract_file")
	if fileErr == nil {
		if msg, ok := validateContractFile(file); !ok {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": msg})
		}
	}

	// Company name must be unique; checked before the insert so the error
	// is specific, with the unique index as backstop for the race window.
	var existing models.Supplier
	if err := c.DB.Where("company_name = ?", input.CompanyName).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "company name already exists"})
	}

	if fileErr == nil {
		if err := c.saveContractFile(ctx, file, &supplier); err != nil {
			log.Error().Err(err).Msg("failed to store contract file")
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to store contract file"})
		}
	}

	if err := c.DB.Create(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "company name already exists"})
		}
		log.Error().Err(err).Msg("failed to create supplier")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to create supplier"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Supplier created successfully", "data": supplier})
}

func (c *SupplierController) GetAllSuppliers(ctx *fiber.Ctx) error {
	suppliers := []models.Supplier{}
	if err := c.DB.Order("created_at DESC").Find(&suppliers).Error; err != nil {
		log.Error().Err(err).Msg("failed to fetch suppliers")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to fetch suppliers"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": suppliers})
}

func (c *SupplierController) SearchSuppliers(ctx *fiber.Ctx) error {
	keyword := ctx.Query("keyword")
	if keyword == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "search keyword is required"})
	}

	kw := "%" + keyword + "%"
	suppliers := []models.Supplier{}
	err := c.DB.
		Where("LOWER(company_name) LIKE LOWER(?) OR LOWER(contact_person) LIKE LOWER(?)", kw, kw).
		Order("created_at DESC").
		Find(&suppliers).Error
	if err != nil {
		log.Error().Err(err).Msg("failed to search suppliers")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to search suppliers"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": suppliers})
}

func (c *SupplierController) UpdateSupplier(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid ID"})
	}

	var supplier models.Supplier
	if err := c.DB.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "supplier not found"})
		}
		log.Error().Err(err).Msg("failed to fetch supplier")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to fetch supplier"})
	}

	var input supplierInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if msg, ok := applyInput(input, &supplier); !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": msg})
	}

	file, fileErr := ctx.FormFile("contract_file")
	if fileErr == nil {
		if msg, ok := validateContractFile(file); !ok {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": msg})
		}
	}

	// Duplicate check excludes the supplier being updated
	var existing models.Supplier
	if err := c.DB.Where("company_name = ? AND id <> ?", input.CompanyName, id).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "company name already used by another supplier"})
	}

	if fileErr == nil {
		if err := c.saveContractFile(ctx, file, &supplier); err != nil {
			log.Error().Err(err).Msg("failed to store contract file")
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to store contract file"})
		}
	}

	if err := c.DB.Save(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "company name already used by another supplier"})
		}
		log.Error().Err(err).Msg("failed to update supplier")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to update supplier"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Supplier updated successfully", "data": supplier})
}

func (c *SupplierController) DeleteSupplier(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid ID"})
	}

	var supplier models.Supplier
	if err := c.DB.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "supplier not found"})
		}
		log.Error().Err(err).Msg("failed to fetch supplier")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to fetch supplier"})
	}

	orderCount, err := c.Orders.CountBySupplier(supplier.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to count supplier orders")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to delete supplier"})
	}
	if orderCount > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "supplier has related orders and cannot be deleted"})
	}

	if err := c.DB.Delete(&supplier).Error; err != nil {
		log.Error().Err(err).Msg("failed to delete supplier")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to delete supplier"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Supplier deleted successfully"})
}

// ExportSuppliers writes the full supplier list as an xlsx attachment.
func (c *SupplierController) ExportSuppliers(ctx *fiber.Ctx) error {
	suppliers := []models.Supplier{}
	if err := c.DB.Order("created_at DESC").Find(&suppliers).Error; err != nil {
		log.Error().Err(err).Msg("failed to fetch suppliers for export")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to export suppliers"})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Company Name")
	f.SetCellValue(sheet, "B1", "Contact Person")
	f.SetCellValue(sheet, "C1", "Contact Phone")
	f.SetCellValue(sheet, "D1", "Contract Start")
	f.SetCellValue(sheet, "E1", "Contract End")
	f.SetCellValue(sheet, "F1", "Logistics Type")
	f.SetCellValue(sheet, "G1", "Contract File")

	for i, s := range suppliers {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), s.CompanyName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), s.ContactPerson)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), s.ContactPhone)
		if s.ContractStartDate != nil {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), s.ContractStartDate.Format("2006-01-02"))
		}
		if s.ContractEndDate != nil {
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), s.ContractEndDate.Format("2006-01-02"))
		}
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), s.LogisticsType)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), s.ContractFileOriginalName)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="suppliers.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		log.Error().Err(err).Msg("failed to generate excel export")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "failed to export suppliers"})
	}

	return nil
}
