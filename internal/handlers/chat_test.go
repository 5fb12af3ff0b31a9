package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workfree/pocket-lawyer/internal/auth"
	"github.com/workfree/pocket-lawyer/internal/config"
	"github.com/workfree/pocket-lawyer/internal/handlers"
	"github.com/workfree/pocket-lawyer/internal/middleware"
	"github.com/workfree/pocket-lawyer/internal/models"
	"github.com/workfree/pocket-lawyer/internal/services"
	"github.com/workfree/pocket-lawyer/internal/store"
)

// Zero delay keeps the tests fast; the delay bounds are configuration, not
// behavior.
func chatTestConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", AIMinDelayMS: 0, AIMaxDelayMS: 0}
}

func setupChatApp(s *store.Store, cfg *config.Config) *fiber.App {
	app := fiber.New()
	h := &handlers.ChatHandler{Store: s, Advisor: services.NewKeywordAdvisor(), Cfg: cfg}
	chat := app.Group("/api/chat", middleware.AuthOptional(cfg.JWTSecret))
	chat.Get("/messages", h.GetMessages)
	chat.Post("/messages", h.CreateMessage)
	chat.Post("/ai-response", h.AIResponse)
	return app
}

func TestCreateChatMessage(t *testing.T) {
	app := setupChatApp(store.NewEmpty(), chatTestConfig())

	resp, err := app.Test(jsonRequest("POST", "/api/chat/messages", fiber.Map{
		"content": "Do I need a lawyer?",
		"type":    "user",
	}))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	msg := decodeJSON[models.ChatMessage](t, resp)
	assert.Equal(t, 1, msg.ID)
	assert.Nil(t, msg.UserID)
	assert.False(t, msg.Timestamp.IsZero(), "timestamp is server-assigned")
}

func TestCreateChatMessageInvalidType(t *testing.T) {
	app := setupChatApp(store.NewEmpty(), chatTestConfig())

	resp, err := app.Test(jsonRequest("POST", "/api/chat/messages", fiber.Map{
		"content": "hello",
		"type":    "system",
	}))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeJSON[map[string]any](t, resp)
	assert.Equal(t, "Invalid message data", body["message"])
}

func TestGetChatMessagesUserFilter(t *testing.T) {
	s := store.NewEmpty()
	app := setupChatApp(s, chatTestConfig())

	seven := 7
	s.CreateChatMessage(models.InsertChatMessage{UserID: &seven, Content: "mine", Type: "user"})
	s.CreateChatMessage(models.InsertChatMessage{Content: "anonymous", Type: "user"})

	resp, err := app.Test(jsonRequest("GET", "/api/chat/messages?userId=7", nil))
	require.NoError(t, err)

	msgs := decodeJSON[[]models.ChatMessage](t, resp)
	require.Len(t, msgs, 1)
	assert.Equal(t, "mine", msgs[0].Content)

	resp, err = app.Test(jsonRequest("GET", "/api/chat/messages", nil))
	require.NoError(t, err)
	assert.Len(t, decodeJSON[[]models.ChatMessage](t, resp), 2)

	// 0 and garbage both mean "no filter": ids start at 1
	for _, q := range []string{"?userId=0", "?userId=abc"} {
		resp, err = app.Test(jsonRequest("GET", "/api/chat/messages"+q, nil))
		require.NoError(t, err)
		assert.Len(t, decodeJSON[[]models.ChatMessage](t, resp), 2, q)
	}
}

func TestAuthedChatMessageDefaultsUserID(t *testing.T) {
	cfg := chatTestConfig()
	s := store.NewEmpty()
	app := setupChatApp(s, cfg)

	user, ok := s.CreateUser(models.InsertUser{Username: "asha", Password: "hash"})
	require.True(t, ok)
	token, err := auth.GenerateToken(cfg.JWTSecret, user.ID)
	require.NoError(t, err)

	req := jsonRequest("POST", "/api/chat/messages", fiber.Map{
		"content": "hello",
		"type":    "user",
	})
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	msg := decodeJSON[models.ChatMessage](t, resp)
	require.NotNil(t, msg.UserID)
	assert.Equal(t, user.ID, *msg.UserID)
}

func TestAIResponseRequiresMessage(t *testing.T) {
	app := setupChatApp(store.NewEmpty(), chatTestConfig())

	resp, err := app.Test(jsonRequest("POST", "/api/chat/ai-response", fiber.Map{}))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeJSON[map[string]any](t, resp)
	assert.Equal(t, "Message is required", body["message"])
}

func TestAIResponseKeywordDeterminism(t *testing.T) {
	app := setupChatApp(store.NewEmpty(), chatTestConfig())

	var first string
	for i := 0; i < 5; i++ {
		resp, err := app.Test(jsonRequest("POST", "/api/chat/ai-response", fiber.Map{
			"message": "What about my rental property?",
		}))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		body := decodeJSON[map[string]string](t, resp)
		require.NotEmpty(t, body["response"])
		assert.Contains(t, body["response"], "tenant rights")

		if i == 0 {
			first = body["response"]
			continue
		}
		assert.Equal(t, first, body["response"], "keyword matches are deterministic")
	}
}
