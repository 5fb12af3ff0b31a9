package handlers

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/workfree/pocket-lawyer/internal/config"
	"github.com/workfree/pocket-lawyer/internal/middleware"
	"github.com/workfree/pocket-lawyer/internal/models"
	"github.com/workfree/pocket-lawyer/internal/services"
	"github.com/workfree/pocket-lawyer/internal/store"
	"github.com/workfree/pocket-lawyer/internal/utils"
)

// ChatHandler handles chat history and AI response routes
type ChatHandler struct {
	Store   *store.Store
	Advisor services.Advisor
	Cfg     *config.Config
}

// GetMessages handles GET /api/chat/messages
// @Summary List chat messages
// @Description List chat messages in creation order, optionally filtered by user id
// @Tags Chat
// @Produce json
// @Param userId query int false "Filter by user id"
// @Success 200 {array} models.ChatMessage
// @Failure 500 {object} utils.ErrorBody
// @Router /chat/messages [get]
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	var userID *int
	if raw := c.Query("userId"); raw != "" {
		// An unparsable or non-positive userId is treated as absent; ids
		// start at 1, so 0 can never name a user
		if id, err := strconv.Atoi(raw); err == nil && id > 0 {
			userID = &id
		}
	}

	return c.Status(fiber.StatusOK).JSON(h.Store.GetChatMessages(userID))
}

// CreateMessage handles POST /api/chat/messages
// @Summary Create a chat message
// @Description Store one chat turn; the timestamp is server-assigned
// @Tags Chat
// @Accept json
// @Produce json
// @Param message body models.InsertChatMessage true "Message"
// @Success 200 {object} models.ChatMessage
// @Failure 400 {object} utils.ErrorBody
// @Router /chat/messages [post]
func (h *ChatHandler) CreateMessage(c *fiber.Ctx) error {
	var in models.InsertChatMessage
	if errs := decodeBody(c, &in); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid message data", errs)
	}

	// Authenticated callers own their messages unless the body says otherwise
	if in.UserID == nil {
		if id, ok := middleware.AuthedUserID(c); ok {
			in.UserID = &id
		}
	}

	return c.Status(fiber.StatusOK).JSON(h.Store.CreateChatMessage(in))
}

type aiResponseRequest struct {
	Message string `json:"message"`
}

type aiResponseBody struct {
	Response string `json:"response"`
}

// AIResponse handles POST /api/chat/ai-response
// @Summary Get an AI reply
// @Description Produce a canned legal-information reply after a simulated thinking delay
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body aiResponseRequest true "User message"
// @Success 200 {object} aiResponseBody
// @Failure 400 {object} utils.ErrorBody
// @Failure 429 {object} utils.ErrorBody
// @Router /chat/ai-response [post]
func (h *ChatHandler) AIResponse(c *fiber.Ctx) error {
	var req aiResponseRequest
	if err := c.BodyParser(&req); err != nil || req.Message == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Message is required")
	}

	// Simulated processing delay, local to this request. Fiber runs each
	// handler on its own goroutine, so other requests are unaffected.
	if h.Cfg.AIMaxDelayMS > 0 {
		delay := h.Cfg.AIMinDelayMS
		if spread := h.Cfg.AIMaxDelayMS - h.Cfg.AIMinDelayMS; spread > 0 {
			delay += rand.Intn(spread + 1)
		}
		time.Sleep(time.Duration(delay) * time.Millisecond)
	}

	return c.Status(fiber.StatusOK).JSON(aiResponseBody{Response: h.Advisor.Respond(req.Message)})
}
