package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/workfree/pocket-lawyer/internal/models"
	"github.com/workfree/pocket-lawyer/internal/services"
	"github.com/workfree/pocket-lawyer/internal/store"
	"github.com/workfree/pocket-lawyer/internal/utils"
)

// DocumentHandler handles document analysis routes. Analyses are append-only.
type DocumentHandler struct {
	Store *store.Store
}

// List handles GET /api/documents
// @Summary List document analyses
// @Tags Documents
// @Produce json
// @Success 200 {array} models.DocumentAnalysis
// @Failure 500 {object} utils.ErrorBody
// @Router /documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.GetDocumentAnalyses())
}

// Analyze handles POST /api/documents/analyze
// @Summary Analyze a document
// @Description Generate an analysis summary and store the record with a server-assigned timestamp
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body models.AnalyzeDocumentRequest true "Document"
// @Success 200 {object} models.DocumentAnalysis
// @Failure 400 {object} utils.ErrorBody
// @Router /documents/analyze [post]
func (h *DocumentHandler) Analyze(c *fiber.Ctx) error {
	var in models.AnalyzeDocumentRequest
	if errs := decodeBody(c, &in); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid document data", errs)
	}

	result := services.AnalyzeDocument(in.FileName, in.FileType, in.Content)
	analysis := h.Store.CreateDocumentAnalysis(in.FileName, in.FileType, result)

	return c.Status(fiber.StatusOK).JSON(analysis)
}
