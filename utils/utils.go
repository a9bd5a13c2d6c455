package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"
)

// Accepted phone formats: mobile (1[3-9]xxxxxxxxx), landline with area
// code (0xx[x]-xxxxxxx[x]) and toll-free (400-xxx-xxxx), dashes optional.
var phoneRegex = regexp.MustCompile(`^1[3-9][0-9]{9}$|^0\d{2,3}-?\d{7,8}$|^400-?\d{3}-?\d{4}$`)

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// GenerateStoredFilename builds a collision-free storage name for an
// uploaded file: field name, upload timestamp and a snowflake suffix,
// keeping the original extension.
func GenerateStoredFilename(fieldName, originalName string, suffix int64) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%s-%d-%d%s", fieldName, time.Now().UnixMilli(), suffix, ext)
}

// ParseDate parses an optional yyyy-mm-dd form value. Empty input is not
// an error, it simply yields nil.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
