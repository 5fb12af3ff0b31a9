package handlers

import (
	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"github.com/workfree/pocket-lawyer/internal/config"
	"github.com/workfree/pocket-lawyer/internal/models"
	"github.com/workfree/pocket-lawyer/internal/services"
	"github.com/workfree/pocket-lawyer/internal/store"
	"github.com/workfree/pocket-lawyer/internal/utils"
)

// FeedbackHandler handles user feedback routes
type FeedbackHandler struct {
	Store *store.Store
	Cfg   *config.Config
}

// List handles GET /api/feedback
// @Summary List feedback entries
// @Tags Feedback
// @Produce json
// @Success 200 {array} models.Feedback
// @Failure 500 {object} utils.ErrorBody
// @Router /feedback [get]
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.GetFeedbackEntries())
}

// Create handles POST /api/feedback
// @Summary Submit feedback
// @Description Store a feedback record and emit a best-effort notification
// @Tags Feedback
// @Accept json
// @Produce json
// @Param feedback body models.InsertFeedback true "Feedback"
// @Success 200 {object} models.Feedback
// @Failure 400 {object} utils.ErrorBody
// @Router /feedback [post]
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	var in models.InsertFeedback
	if errs := decodeBody(c, &in); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid feedback data", errs)
	}

	// Header values are views over fasthttp's reusable buffers; copy before
	// the string outlives the request
	var userAgent *string
	if ua := fiberutils.CopyString(c.Get(fiber.HeaderUserAgent)); ua != "" {
		userAgent = &ua
	}

	fb := h.Store.CreateFeedback(in, userAgent)

	// Best effort; a failed notification never fails the request
	services.SendFeedbackNotification(h.Cfg, fb)

	return c.Status(fiber.StatusOK).JSON(fb)
}
