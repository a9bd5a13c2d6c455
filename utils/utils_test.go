package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"13800138000",  // mobile
		"19912345678",  // mobile, 19x prefix
		"010-12345678", // landline with area code
		"0755-1234567",
		"075512345678", // landline without dash
		"400-123-4567", // toll-free
		"4001234567",
	}
	for _, phone := range valid {
		assert.True(t, IsValidPhone(phone), "expected valid: %s", phone)
	}

	invalid := []string{
		"",
		"12800138000", // 12x is not a mobile prefix
		"1380013800",  // too short
		"138001380001",
		"010-123456", // landline body too short
		"400-12-3456",
		"phone",
		"138 0013 8000",
	}
	for _, phone := range invalid {
		assert.False(t, IsValidPhone(phone), "expected invalid: %s", phone)
	}
}

func TestGenerateStoredFilename(t *testing.T) {
	name := GenerateStoredFilename("contract_file", "supplier agreement.pdf", 123456789)

	assert.True(t, strings.HasPrefix(name, "contract_file-"), name)
	assert.True(t, strings.HasSuffix(name, "-123456789.pdf"), name)
	assert.NotContains(t, name, " ")
}

func TestGenerateStoredFilenameKeepsExtension(t *testing.T) {
	name := GenerateStoredFilename("contract_file", "scan.PDF", 42)
	assert.True(t, strings.HasSuffix(name, ".PDF"), name)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-15")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), *d)

	d, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = ParseDate("15/03/2025")
	assert.Error(t, err)
}
