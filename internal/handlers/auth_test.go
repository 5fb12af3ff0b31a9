package handlers_test

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workfree/pocket-lawyer/internal/config"
	"github.com/workfree/pocket-lawyer/internal/handlers"
	"github.com/workfree/pocket-lawyer/internal/middleware"
	"github.com/workfree/pocket-lawyer/internal/models"
	"github.com/workfree/pocket-lawyer/internal/store"
)

func setupAuthApp() (*fiber.App, *store.Store) {
	s := store.NewEmpty()
	cfg := &config.Config{JWTSecret: "test-secret"}

	app := fiber.New()
	h := &handlers.AuthHandler{Store: s, Cfg: cfg}
	grp := app.Group("/api/auth")
	grp.Post("/signup", h.Signup)
	grp.Post("/login", h.Login)
	grp.Get("/me", middleware.AuthRequired(cfg.JWTSecret), h.Me)
	return app, s
}

func signup(t *testing.T, app *fiber.App, username, password string) models.User {
	t.Helper()
	resp, err := app.Test(jsonRequest("POST", "/api/auth/signup", fiber.Map{
		"username": username,
		"password": password,
	}))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	return decodeJSON[models.User](t, resp)
}

func TestSignupNeverExposesPassword(t *testing.T) {
	app, s := setupAuthApp()

	resp, err := app.Test(jsonRequest("POST", "/api/auth/signup", fiber.Map{
		"username": "asha",
		"password": "correct horse",
	}))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body := decodeJSON[map[string]any](t, resp)
	assert.Equal(t, "asha", body["username"])
	assert.NotContains(t, body, "password")

	stored, ok := s.GetUserByUsername("asha")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"), "password is stored as a bcrypt hash")
}

func TestSignupDuplicateUsername(t *testing.T) {
	app, _ := setupAuthApp()
	signup(t, app, "asha", "correct horse")

	resp, err := app.Test(jsonRequest("POST", "/api/auth/signup", fiber.Map{
		"username": "asha",
		"password": "another pass",
	}))
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)

	body := decodeJSON[map[string]any](t, resp)
	assert.Equal(t, "Username already taken", body["message"])
}

func TestSignupShortPassword(t *testing.T) {
	app, _ := setupAuthApp()

	resp, err := app.Test(jsonRequest("POST", "/api/auth/signup", fiber.Map{
		"username": "asha",
		"password": "short",
	}))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeJSON[map[string]any](t, resp)
	assert.Equal(t, "Invalid signup data", body["message"])
}

func TestLoginAndMe(t *testing.T) {
	app, _ := setupAuthApp()
	user := signup(t, app, "asha", "correct horse")

	resp, err := app.Test(jsonRequest("POST", "/api/auth/login", fiber.Map{
		"username": "asha",
		"password": "correct horse",
	}))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	token := decodeJSON[map[string]string](t, resp)["token"]
	require.NotEmpty(t, token)

	req := jsonRequest("GET", "/api/auth/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	me := decodeJSON[models.User](t, resp)
	assert.Equal(t, user.ID, me.ID)
	assert.Equal(t, "asha", me.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := setupAuthApp()
	signup(t, app, "asha", "correct horse")

	for _, body := range []fiber.Map{
		{"username": "asha", "password": "wrong password"},
		{"username": "nobody", "password": "correct horse"},
	} {
		resp, err := app.Test(jsonRequest("POST", "/api/auth/login", body))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)

		msg := decodeJSON[map[string]any](t, resp)
		assert.Equal(t, "Invalid username or password", msg["message"])
	}
}

func TestMeWithoutToken(t *testing.T) {
	app, _ := setupAuthApp()

	resp, err := app.Test(jsonRequest("GET", "/api/auth/me", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
