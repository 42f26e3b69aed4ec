package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mushafhub/mushaf-backend/internal/services"
)

type WordHandler struct {
	svc services.WordService
}

func NewWordHandler(svc services.WordService) *WordHandler {
	return &WordHandler{svc: svc}
}

// GET /api/words and GET /api/words?line_id=
func (h *WordHandler) Index(c *gin.Context) {
	var lineID *uint
	if raw := c.Query("line_id"); raw != "" {
		id, err := parseUint(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line id"})
			return
		}
		lineID = &id
	}
	words, err := h.svc.List(c.Request.Context(), nil, lineID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, words)
}

// GET /api/words/:id
func (h *WordHandler) Show(c *gin.Context) {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid word id"})
		return
	}
	word, err := h.svc.Get(c.Request.Context(), nil, id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, word)
}
