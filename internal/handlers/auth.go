package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/workfree/pocket-lawyer/internal/auth"
	"github.com/workfree/pocket-lawyer/internal/config"
	"github.com/workfree/pocket-lawyer/internal/middleware"
	"github.com/workfree/pocket-lawyer/internal/models"
	"github.com/workfree/pocket-lawyer/internal/store"
	"github.com/workfree/pocket-lawyer/internal/utils"
)

// AuthHandler handles signup, login, and identity routes
type AuthHandler struct {
	Store *store.Store
	Cfg   *config.Config
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Signup handles POST /api/auth/signup
// @Summary Create an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body models.InsertUser true "Credentials"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in models.InsertUser
	if errs := decodeBody(c, &in); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid signup data", errs)
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		log.Printf("signup: hashing password for %q: %v", in.Username, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create user")
	}
	in.Password = hashed

	// The store refuses duplicate usernames atomically, so concurrent
	// signups for the same name cannot both succeed
	user, ok := h.Store.CreateUser(in)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Username already taken")
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} tokenResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if errs := decodeBody(c, &req); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid login data", errs)
	}

	user, ok := h.Store.GetUserByUsername(req.Username)
	if !ok || !auth.CheckPassword(user.Password, req.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := auth.GenerateToken(h.Cfg.JWTSecret, user.ID)
	if err != nil {
		log.Printf("login: signing token for user %d: %v", user.ID, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to log in")
	}

	return c.Status(fiber.StatusOK).JSON(tokenResponse{Token: token})
}

// Me handles GET /api/auth/me
// @Summary Get the authenticated user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id, ok := middleware.AuthedUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authorization header is required")
	}

	user, ok := h.Store.GetUser(id)
	if !ok {
		return utils.NotFoundResponse(c, "User not found")
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
