package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mushafhub/mushaf-backend/internal/services"
)

type MushafHandler struct {
	svc services.MushafService
}

func NewMushafHandler(svc services.MushafService) *MushafHandler {
	return &MushafHandler{svc: svc}
}

// GET /api/mushafs
func (h *MushafHandler) Index(c *gin.Context) {
	mushafs, err := h.svc.List(c.Request.Context(), nil)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, mushafs)
}

// GET /api/mushafs/:mushaf_id
func (h *MushafHandler) Show(c *gin.Context) {
	id, err := parseUint(c.Param("mushaf_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mushaf id"})
		return
	}
	mushaf, err := h.svc.Get(c.Request.Context(), nil, id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, mushaf)
}
