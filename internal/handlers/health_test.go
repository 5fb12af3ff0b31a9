package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workfree/pocket-lawyer/internal/handlers"
	"github.com/workfree/pocket-lawyer/internal/services"
	"github.com/workfree/pocket-lawyer/internal/store"
)

func TestHealthSeededStore(t *testing.T) {
	s, err := store.New()
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/api/health", (&handlers.HealthHandler{Store: s}).Health)

	resp, err := app.Test(jsonRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	result := decodeJSON[services.HealthCheckResult](t, resp)
	assert.Equal(t, "healthy", result.Status)
	assert.NotZero(t, result.Details["caseLaw"])
}

func TestHealthEmptyStore(t *testing.T) {
	app := fiber.New()
	app.Get("/api/health", (&handlers.HealthHandler{Store: store.NewEmpty()}).Health)

	resp, err := app.Test(jsonRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}
