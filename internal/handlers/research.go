package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/workfree/pocket-lawyer/internal/store"
	"github.com/workfree/pocket-lawyer/internal/utils"
)

// ResearchHandler handles the read-only research collections: case law,
// legal templates, and state law guides.
type ResearchHandler struct {
	Store *store.Store
}

// Cases handles GET /api/cases
// @Summary List case law
// @Description List case-law entries, filtered by category and/or free-text search over title, summary, and key points
// @Tags Research
// @Produce json
// @Param category query string false "Category (case-insensitive exact match)"
// @Param search query string false "Search text (case-insensitive substring)"
// @Success 200 {array} models.CaseLaw
// @Failure 500 {object} utils.ErrorBody
// @Router /cases [get]
func (h *ResearchHandler) Cases(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.GetCaseLaw(c.Query("category"), c.Query("search")))
}

// Templates handles GET /api/templates
// @Summary List legal templates
// @Tags Research
// @Produce json
// @Param category query string false "Category (case-insensitive exact match)"
// @Success 200 {array} models.LegalTemplate
// @Failure 500 {object} utils.ErrorBody
// @Router /templates [get]
func (h *ResearchHandler) Templates(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.GetLegalTemplates(c.Query("category")))
}

// Template handles GET /api/templates/:id
// @Summary Get a legal template
// @Tags Research
// @Produce json
// @Param id path int true "Template id"
// @Success 200 {object} models.LegalTemplate
// @Failure 404 {object} utils.ErrorBody
// @Router /templates/{id} [get]
func (h *ResearchHandler) Template(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.NotFoundResponse(c, "Template not found")
	}

	tmpl, ok := h.Store.GetLegalTemplate(id)
	if !ok {
		return utils.NotFoundResponse(c, "Template not found")
	}
	return c.Status(fiber.StatusOK).JSON(tmpl)
}

// StateGuides handles GET /api/state-guides
// @Summary List state law guides
// @Tags Research
// @Produce json
// @Param state query string false "State (case-insensitive exact match)"
// @Param category query string false "Category (case-insensitive exact match)"
// @Success 200 {array} models.StateLawGuide
// @Failure 500 {object} utils.ErrorBody
// @Router /state-guides [get]
func (h *ResearchHandler) StateGuides(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.GetStateLawGuides(c.Query("state"), c.Query("category")))
}
