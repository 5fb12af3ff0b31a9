package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/workfree/pocket-lawyer/internal/models"
	"github.com/workfree/pocket-lawyer/internal/store"
	"github.com/workfree/pocket-lawyer/internal/utils"
)

// KnowledgeHandler handles knowledge base article routes
type KnowledgeHandler struct {
	Store *store.Store
}

// List handles GET /api/knowledge
// @Summary List published articles
// @Description List published knowledge base articles in creation order
// @Tags Knowledge
// @Produce json
// @Success 200 {array} models.KnowledgeArticle
// @Failure 500 {object} utils.ErrorBody
// @Router /knowledge [get]
func (h *KnowledgeHandler) List(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.GetKnowledgeArticles())
}

// Get handles GET /api/knowledge/:id
// @Summary Get an article
// @Tags Knowledge
// @Produce json
// @Param id path int true "Article id"
// @Success 200 {object} models.KnowledgeArticle
// @Failure 404 {object} utils.ErrorBody
// @Router /knowledge/{id} [get]
func (h *KnowledgeHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.NotFoundResponse(c, "Article not found")
	}

	article, ok := h.Store.GetKnowledgeArticle(id)
	if !ok {
		return utils.NotFoundResponse(c, "Article not found")
	}
	return c.Status(fiber.StatusOK).JSON(article)
}

// Create handles POST /api/knowledge
// @Summary Create an article
// @Tags Knowledge
// @Accept json
// @Produce json
// @Param article body models.InsertKnowledgeArticle true "Article"
// @Success 200 {object} models.KnowledgeArticle
// @Failure 400 {object} utils.ErrorBody
// @Router /knowledge [post]
func (h *KnowledgeHandler) Create(c *fiber.Ctx) error {
	var in models.InsertKnowledgeArticle
	if errs := decodeBody(c, &in); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid article data", errs)
	}

	return c.Status(fiber.StatusOK).JSON(h.Store.CreateKnowledgeArticle(in))
}

// Update handles PUT /api/knowledge/:id
// @Summary Update an article
// @Description Merge the supplied fields onto the stored article
// @Tags Knowledge
// @Accept json
// @Produce json
// @Param id path int true "Article id"
// @Param article body models.UpdateKnowledgeArticle true "Partial article"
// @Success 200 {object} models.KnowledgeArticle
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /knowledge/{id} [put]
func (h *KnowledgeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.NotFoundResponse(c, "Article not found")
	}

	var in models.UpdateKnowledgeArticle
	if errs := decodeBody(c, &in); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid article data", errs)
	}

	article, ok := h.Store.UpdateKnowledgeArticle(id, in)
	if !ok {
		return utils.NotFoundResponse(c, "Article not found")
	}
	return c.Status(fiber.StatusOK).JSON(article)
}

// Delete handles DELETE /api/knowledge/:id
// @Summary Delete an article
// @Tags Knowledge
// @Produce json
// @Param id path int true "Article id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorBody
// @Router /knowledge/{id} [delete]
func (h *KnowledgeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.NotFoundResponse(c, "Article not found")
	}

	if !h.Store.DeleteKnowledgeArticle(id) {
		return utils.NotFoundResponse(c, "Article not found")
	}
	return utils.MessageResponse(c, "Article deleted successfully")
}
