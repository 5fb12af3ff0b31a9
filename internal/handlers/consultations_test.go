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

func setupConsultationApp(s *store.Store) *fiber.App {
	app := fiber.New()
	h := &handlers.ConsultationHandler{Store: s}
	app.Get("/api/consultations", h.List)
	app.Get("/api/consultations/:id", h.Get)
	app.Post("/api/consultations", h.Create)
	app.Put("/api/consultations/:id", h.Update)
	return app
}

func TestCreateBookingForcesPendingStatus(t *testing.T) {
	app := setupConsultationApp(store.NewEmpty())

	// Client-supplied status is ignored at creation
	resp, err := app.Test(jsonRequest("POST", "/api/consultations", fiber.Map{
		"name":       "Priya",
		"email":      "priya@example.com",
		"legalIssue": "tenancy dispute",
		"status":     "confirmed",
	}))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	booking := decodeJSON[models.ConsultationBooking](t, resp)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, 1, booking.ID)
	assert.Nil(t, booking.Phone)
}

func TestCreateBookingValidation(t *testing.T) {
	app := setupConsultationApp(store.NewEmpty())

	resp, err := app.Test(jsonRequest("POST", "/api/consultations", fiber.Map{
		"name":       "Priya",
		"email":      "not-an-email",
		"legalIssue": "tenancy dispute",
	}))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeJSON[map[string]any](t, resp)
	assert.Equal(t, "Invalid booking data", body["message"])
	assert.NotEmpty(t, body["errors"])
}

func TestUpdateBookingStatus(t *testing.T) {
	s := store.NewEmpty()
	app := setupConsultationApp(s)

	s.CreateConsultationBooking(models.InsertConsultationBooking{
		Name: "Priya", Email: "priya@example.com", LegalIssue: "tenancy dispute",
	})

	resp, err := app.Test(jsonRequest("PUT", "/api/consultations/1", fiber.Map{
		"status": "confirmed",
	}))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	updated := decodeJSON[models.ConsultationBooking](t, resp)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, "Priya", updated.Name)
}

func TestUpdateBookingRejectsUnknownStatus(t *testing.T) {
	s := store.NewEmpty()
	app := setupConsultationApp(s)

	s.CreateConsultationBooking(models.InsertConsultationBooking{
		Name: "Priya", Email: "priya@example.com", LegalIssue: "tenancy dispute",
	})

	resp, err := app.Test(jsonRequest("PUT", "/api/consultations/1", fiber.Map{
		"status": "archived",
	}))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestBookingNotFound(t *testing.T) {
	app := setupConsultationApp(store.NewEmpty())

	resp, err := app.Test(jsonRequest("GET", "/api/consultations/42", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	body := decodeJSON[map[string]any](t, resp)
	assert.Equal(t, "Booking not found", body["message"])

	resp, err = app.Test(jsonRequest("PUT", "/api/consultations/42", fiber.Map{"name": "X"}))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCreateBookingParsesPreferredDate(t *testing.T) {
	app := setupConsultationApp(store.NewEmpty())

	// Date-only form input is accepted
	resp, err := app.Test(jsonRequest("POST", "/api/consultations", fiber.Map{
		"name":          "Priya",
		"email":         "priya@example.com",
		"legalIssue":    "tenancy dispute",
		"preferredDate": "2026-09-15",
	}))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	booking := decodeJSON[models.ConsultationBooking](t, resp)
	require.NotNil(t, booking.PreferredDate)
	assert.Equal(t, 2026, booking.PreferredDate.Time().Year())
}
