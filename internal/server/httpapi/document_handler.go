package httpapi

import (
	"fmt"
	"net/http"

	"github.com/Shivam7262/Writely/internal/apperr"
	"github.com/Shivam7262/Writely/internal/logging"
	"github.com/Shivam7262/Writely/internal/server/models"
	"github.com/Shivam7262/Writely/internal/server/services"
	"github.com/gin-gonic/gin"
)

// DocumentHandler serves the /api/documents endpoints. Every route runs
// behind bearerAuth, so the caller id is always present.
type DocumentHandler struct {
	documents *services.DocumentService
	logger    logging.Logger
}

func NewDocumentHandler(documents *services.DocumentService, logger logging.Logger) *DocumentHandler {
	return &DocumentHandler{documents: documents, logger: logger.With("module", "document_handler")}
}

type createDocumentReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// updateDocumentReq uses pointers so an absent field and an empty string
// stay distinguishable.
type updateDocumentReq struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// List handles GET /api/documents.
func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.documents.List(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(docs),
		"data":    toDocumentDTOs(docs),
	})
}

// Get handles GET /api/documents/:id.
func (h *DocumentHandler) Get(c *gin.Context) {
	doc, err := h.documents.Get(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, toDocumentDTO(doc))
}

// Create handles POST /api/documents. Any owner field in the body is
// ignored; ownership comes from the verified token.
func (h *DocumentHandler) Create(c *gin.Context) {
	var req createDocumentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request body", apperr.ErrValidation))
		return
	}

	doc, err := h.documents.Create(c.Request.Context(), callerID(c), req.Title, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info(c.Request.Context(), "document created", "id", doc.ID)
	respondData(c, http.StatusCreated, toDocumentDTO(doc))
}

// Update handles PUT /api/documents/:id.
func (h *DocumentHandler) Update(c *gin.Context) {
	var req updateDocumentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request body", apperr.ErrValidation))
		return
	}

	patch := models.DocumentPatch{Title: req.Title, Content: req.Content}
	doc, err := h.documents.Update(c.Request.Context(), callerID(c), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, toDocumentDTO(doc))
}

// Delete handles DELETE /api/documents/:id.
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.documents.Delete(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info(c.Request.Context(), "document deleted", "id", c.Param("id"))
	respondData(c, http.StatusOK, gin.H{})
}
