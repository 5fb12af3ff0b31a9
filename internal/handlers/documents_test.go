package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workfree/pocket-lawyer/internal/handlers"
	"github.com/workfree/pocket-lawyer/internal/models"
	"github.com/workfree/pocket-lawyer/internal/store"
)

func setupDocumentApp() *fiber.App {
	app := fiber.New()
	h := &handlers.DocumentHandler{Store: store.NewEmpty()}
	app.Get("/api/documents", h.List)
	app.Post("/api/documents/analyze", h.Analyze)
	return app
}

func TestAnalyzeDocument(t *testing.T) {
	app := setupDocumentApp()

	resp, err := app.Test(jsonRequest("POST", "/api/documents/analyze", fiber.Map{
		"fileName": "rental-lease-2026.pdf",
		"fileType": "application/pdf",
	}))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	analysis := decodeJSON[models.DocumentAnalysis](t, resp)
	assert.Equal(t, 1, analysis.ID)
	assert.Equal(t, "rental-lease-2026.pdf", analysis.FileName)
	assert.Contains(t, analysis.AnalysisResult, "rental agreement")
	assert.False(t, analysis.Timestamp.IsZero())

	resp, err = app.Test(jsonRequest("GET", "/api/documents", nil))
	require.NoError(t, err)
	assert.Len(t, decodeJSON[[]models.DocumentAnalysis](t, resp), 1)
}

func TestAnalyzeDocumentValidation(t *testing.T) {
	app := setupDocumentApp()

	resp, err := app.Test(jsonRequest("POST", "/api/documents/analyze", fiber.Map{
		"fileName": "lease.pdf",
	}))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeJSON[map[string]any](t, resp)
	assert.Equal(t, "Invalid document data", body["message"])
}
