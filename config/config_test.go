package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "hello")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_BAD_INT", "not-a-number")

	assert.Equal(t, "hello", getEnv("TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", getEnv("TEST_UNSET", "fallback"))

	assert.Equal(t, 42, getEnvAsInt("TEST_INT", 7))
	assert.Equal(t, 7, getEnvAsInt("TEST_BAD_INT", 7))
	assert.Equal(t, 7, getEnvAsInt("TEST_UNSET", 7))

	assert.True(t, getEnvAsBool("TEST_BOOL", false))
	assert.False(t, getEnvAsBool("TEST_UNSET", false))

	assert.Equal(t, 90*time.Second, getEnvAsDuration("TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, getEnvAsDuration("TEST_UNSET", time.Minute))
}

func TestGetSessionCookie(t *testing.T) {
	CookieHTTPOnly = true
	CookieSecure = true
	CookieSameSite = "None"

	expires := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	cookie := GetSessionCookie("token-value", expires)

	assert.Equal(t, "gate_token", cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.Equal(t, expires, cookie.Expires)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HTTPOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, "None", cookie.SameSite)
}
