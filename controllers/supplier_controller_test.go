package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"supplier-app/config"
	"supplier-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupplierTestApp() *fiber.App {
	app := fiber.New()
	controller := NewSupplierController(nil)
	app.Post("/api/suppliers", controller.CreateSupplier)
	return app
}

type contractUpload struct {
	filename    string
	contentType string
	content     []byte
}

func supplierForm(t *testing.T, fields map[string]string, upload *contractUpload) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if upload != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="contract_file"; filename="`+upload.filename+`"`)
		header.Set("Content-Type", upload.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(upload.content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func postSupplier(t *testing.T, app *fiber.App, fields map[string]string, upload *contractUpload) (int, map[string]interface{}) {
	t.Helper()
	body, contentType := supplierForm(t, fields, upload)
	req := httptest.NewRequest(http.MethodPost, "/api/suppliers", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func validSupplierFields() map[string]string {
	return map[string]string{
		"company_name":   "Golden Grain Trading",
		"contact_person": "Li Wei",
		"contact_phone":  "13800138000",
	}
}

func TestCreateSupplierMissingRequiredFields(t *testing.T) {
	app := newSupplierTestApp()

	status, body := postSupplier(t, app, map[string]string{"contact_person": "Li Wei"}, nil)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "company name and contact person are required", body["error"])
}

func TestCreateSupplierRejectsBadPhone(t *testing.T) {
	app := newSupplierTestApp()

	fields := validSupplierFields()
	fields["contact_phone"] = "12345"
	status, body := postSupplier(t, app, fields, nil)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid phone number format", body["error"])
}

func TestCreateSupplierRejectsBadContractDates(t *testing.T) {
	app := newSupplierTestApp()

	fields := validSupplierFields()
	fields["contract_start_date"] = "March 1st"
	status, body := postSupplier(t, app, fields, nil)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid contract start date, expected yyyy-mm-dd", body["error"])
}

func TestCreateSupplierRejectsUnknownLogisticsType(t *testing.T) {
	app := newSupplierTestApp()

	fields := validSupplierFields()
	fields["logistics_type"] = "drone"
	status, body := postSupplier(t, app, fields, nil)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid logistics type", body["error"])
}

func TestCreateSupplierRejectsNonPDFContract(t *testing.T) {
	config.MaxUploadSize = 5 * 1024 * 1024
	app := newSupplierTestApp()

	upload := &contractUpload{
		filename:    "contract.docx",
		contentType: "application/msword",
		content:     []byte("not a pdf"),
	}
	status, body := postSupplier(t, app, validSupplierFields(), upload)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "only PDF files are allowed", body["error"])
}

func TestValidateContractFileSizeCap(t *testing.T) {
	config.MaxUploadSize = 5 * 1024 * 1024

	header := &multipart.FileHeader{
		Filename: "contract.pdf",
		Size:     config.MaxUploadSize + 1,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
	}
	msg, ok := validateContractFile(header)
	assert.False(t, ok)
	assert.Contains(t, msg, "byte limit")

	header.Size = config.MaxUploadSize
	_, ok = validateContractFile(header)
	assert.True(t, ok)
}

func TestNewSupplierControllerWiresOrderRepository(t *testing.T) {
	controller := NewSupplierController(nil)
	require.NotNil(t, controller.Orders)
}

func TestApplyInputDefaultsLogisticsType(t *testing.T) {
	var supplier models.Supplier
	msg, ok := applyInput(supplierInput{
		CompanyName:   "Golden Grain Trading",
		ContactPerson: "Li Wei",
	}, &supplier)

	require.True(t, ok, msg)
	assert.Equal(t, models.LogisticsAttached, supplier.LogisticsType)
	assert.Nil(t, supplier.ContractStartDate)
}
