package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mushafhub/mushaf-backend/internal/services"
)

type PageHandler struct {
	svc services.PageService
}

func NewPageHandler(svc services.PageService) *PageHandler {
	return &PageHandler{svc: svc}
}

// GET /api/mushafs/:mushaf_id/pages/:id
// The :id segment is the page's position within the mushaf, not its row id.
func (h *PageHandler) Show(c *gin.Context) {
	mushafID, err := parseUint(c.Param("mushaf_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mushaf id"})
		return
	}
	position, err := parseUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page position"})
		return
	}
	page, err := h.svc.Get(c.Request.Context(), nil, mushafID, int(position))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, page)
}
