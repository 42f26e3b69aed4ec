package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mushafhub/mushaf-backend/internal/services"
)

type NarratorHandler struct {
	svc services.NarratorService
}

func NewNarratorHandler(svc services.NarratorService) *NarratorHandler {
	return &NarratorHandler{svc: svc}
}

// GET /api/narrators
func (h *NarratorHandler) Index(c *gin.Context) {
	narrators, err := h.svc.List(c.Request.Context(), nil)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, narrators)
}
