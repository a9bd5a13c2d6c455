package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"supplier-app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestApp(now *time.Time) (*fiber.App, *services.GateService) {
	gate := &services.GateService{
		Store:       services.NewMemoryStore(),
		Password:    "admin123",
		MaxAttempts: 3,
		Lockout:     5 * time.Minute,
		Session:     24 * time.Hour,
		Secret:      []byte("test-secret"),
		Now:         func() time.Time { return *now },
	}

	app := fiber.New()
	controller := NewAuthController(gate)
	app.Post("/api/auth/login", controller.Login)
	app.Get("/api/auth/status", controller.Status)
	app.Post("/api/auth/logout", controller.Logout)
	return app, gate
}

func login(t *testing.T, app *fiber.App, password string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"password":"`+password+`"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestAuthLoginRequiresPassword(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	app, _ := newAuthTestApp(&now)

	status, body := login(t, app, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "password is required", body["error"])
}

func TestAuthLoginWrongPassword(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	app, _ := newAuthTestApp(&now)

	status, body := login(t, app, "nope")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid password", body["error"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["attempts"])
}

func TestAuthLoginLockout(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	app, _ := newAuthTestApp(&now)

	var status int
	var body map[string]interface{}
	for i := 0; i < 3; i++ {
		status, body = login(t, app, "nope")
	}

	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Contains(t, body["error"], "too many failed attempts, try again in 300 seconds")

	// Still locked for the correct password inside the window
	status, _ = login(t, app, "admin123")
	assert.Equal(t, http.StatusTooManyRequests, status)

	// Window elapsed, the gate opens again
	now = now.Add(5*time.Minute + time.Second)
	status, body = login(t, app, "admin123")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
}

func TestAuthLoginSuccessIssuesSession(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	app, gate := newAuthTestApp(&now)

	status, body := login(t, app, "admin123")
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	assert.True(t, gate.ValidateSession(token))

	// Status endpoint accepts the token as a bearer header
	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	statusData := decoded["data"].(map[string]interface{})
	assert.Equal(t, true, statusData["authenticated"])

	// Past the session duration the same token reads as unauthenticated
	now = now.Add(25 * time.Hour)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &decoded))
	statusData = decoded["data"].(map[string]interface{})
	assert.Equal(t, false, statusData["authenticated"])
}

func TestSessionTokenSources(t *testing.T) {
	app := fiber.New()
	app.Get("/probe", func(ctx *fiber.Ctx) error {
		return ctx.SendString(SessionToken(ctx))
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "abc123", string(raw))

	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "gate_token", Value: "cookie456"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "cookie456", string(raw))
}
