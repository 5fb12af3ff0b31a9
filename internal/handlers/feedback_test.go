package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workfree/pocket-lawyer/internal/config"
	"github.com/workfree/pocket-lawyer/internal/handlers"
	"github.com/workfree/pocket-lawyer/internal/models"
	"github.com/workfree/pocket-lawyer/internal/store"
)

func setupFeedbackApp() *fiber.App {
	app := fiber.New()
	h := &handlers.FeedbackHandler{Store: store.NewEmpty(), Cfg: &config.Config{}}
	app.Get("/api/feedback", h.List)
	app.Post("/api/feedback", h.Create)
	return app
}

func TestCreateFeedbackCapturesUserAgent(t *testing.T) {
	app := setupFeedbackApp()

	req := jsonRequest("POST", "/api/feedback", fiber.Map{
		"type":    "text",
		"content": "The tenant rights article was very helpful.",
	})
	req.Header.Set(fiber.HeaderUserAgent, "pocket-lawyer-test/1.0")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	fb := decodeJSON[models.Feedback](t, resp)
	assert.Equal(t, 1, fb.ID)
	assert.Equal(t, "text", fb.Type)
	require.NotNil(t, fb.UserAgent)
	assert.Equal(t, "pocket-lawyer-test/1.0", *fb.UserAgent)
	assert.False(t, fb.Timestamp.IsZero())
}

func TestCreateFeedbackWithoutContent(t *testing.T) {
	app := setupFeedbackApp()

	resp, err := app.Test(jsonRequest("POST", "/api/feedback", fiber.Map{"type": "positive"}))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	fb := decodeJSON[models.Feedback](t, resp)
	assert.Equal(t, "positive", fb.Type)
	assert.Nil(t, fb.Content)
}

func TestCreateFeedbackRejectsUnknownType(t *testing.T) {
	app := setupFeedbackApp()

	resp, err := app.Test(jsonRequest("POST", "/api/feedback", fiber.Map{"type": "rant"}))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeJSON[map[string]any](t, resp)
	assert.Equal(t, "Invalid feedback data", body["message"])
}

func TestStoredUserAgentSurvivesLaterRequests(t *testing.T) {
	app := setupFeedbackApp()

	req := jsonRequest("POST", "/api/feedback", fiber.Map{"type": "positive"})
	req.Header.Set(fiber.HeaderUserAgent, "first-client/1.0")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	// Later traffic reuses the server's request buffers; the stored string
	// must not alias them
	for i := 0; i < 5; i++ {
		req := jsonRequest("POST", "/api/feedback", fiber.Map{"type": "negative"})
		req.Header.Set(fiber.HeaderUserAgent, "second-client/9.9-with-a-much-longer-token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest("GET", "/api/feedback", nil))
	require.NoError(t, err)

	entries := decodeJSON[[]models.Feedback](t, resp)
	require.NotEmpty(t, entries)
	require.NotNil(t, entries[0].UserAgent)
	assert.Equal(t, "first-client/1.0", *entries[0].UserAgent)
}

func TestListFeedback(t *testing.T) {
	app := setupFeedbackApp()

	for _, kind := range []string{"positive", "negative"} {
		resp, err := app.Test(jsonRequest("POST", "/api/feedback", fiber.Map{"type": kind}))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
	}

	resp, err := app.Test(jsonRequest("GET", "/api/feedback", nil))
	require.NoError(t, err)

	entries := decodeJSON[[]models.Feedback](t, resp)
	require.Len(t, entries, 2)
	assert.Equal(t, "positive", entries[0].Type)
	assert.Equal(t, "negative", entries[1].Type)
}
