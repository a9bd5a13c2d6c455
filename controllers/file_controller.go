package controllers

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"supplier-app/config"
	"supplier-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FileController struct {
	DB *gorm.DB
}

func NewFileController(db *gorm.DB) *FileController {
	return &FileController{DB: db}
}

func contractPath(filename string) (string, bool) {
	if filename == "" || strings.Contains(filename, "..") || strings.ContainsAny(filename, `/\`) {
		return "", false
	}
	return filepath.Join(config.UploadDir, "contracts", filename), true
}

// originalName resolves the stored filename back to the uploaded name kept
// on the supplier row. Falls back to the stored name when no row references
// the file.
func (c *FileController) originalName(filename string) string {
	var supplier models.Supplier
	err := c.DB.Where("contract_file_path = ?", filepath.Join("contracts", filename)).First(&supplier).Error
	if err != nil || supplier.ContractFileOriginalName == "" {
		return filename
	}
	return supplier.ContractFileOriginalName
}

// DownloadContract serves a stored contract as an attachment with the
// original filename, URL-encoded, in the disposition header. A file missing
// on disk is a 404 regardless of what the database says.
func (c *FileController) DownloadContract(ctx *fiber.Ctx) error {
	filename := ctx.Params("filename")
	path, ok := contractPath(filename)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid filename"})
	}

	if _, err := os.Stat(path); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "file not found"})
	}

	encoded := url.PathEscape(c.originalName(filename))
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, encoded, encoded))
	return ctx.SendFile(path)
}

// ViewContract serves the stored PDF inline.
func (c *FileController) ViewContract(ctx *fiber.Ctx) error {
	filename := ctx.Params("filename")
	path, ok := contractPath(filename)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid filename"})
	}

	if _, err := os.Stat(path); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "file not found"})
	}

	return ctx.SendFile(path)
}
