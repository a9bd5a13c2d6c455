package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"supplier-app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateMiddleware(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	gate := &services.GateService{
		Store:       services.NewMemoryStore(),
		Password:    "admin123",
		MaxAttempts: 3,
		Lockout:     5 * time.Minute,
		Session:     24 * time.Hour,
		Secret:      []byte("test-secret"),
		Now:         func() time.Time { return now },
	}

	app := fiber.New()
	app.Get("/protected", GateMiddleware(gate), func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})

	// No token
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	result := gate.Login("client-a", "admin123")
	require.True(t, result.Success)

	// Bearer header
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Session cookie
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "gate_token", Value: result.Token})
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Garbage token
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
