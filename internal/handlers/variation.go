package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mushafhub/mushaf-backend/internal/services"
)

type VariationHandler struct {
	svc services.VariationService
}

func NewVariationHandler(svc services.VariationService) *VariationHandler {
	return &VariationHandler{svc: svc}
}

type variationParams struct {
	Content    string `json:"content"`
	WordID     uint   `json:"word_id"`
	NarratorID uint   `json:"narrator_id"`
}

type createVariationRequest struct {
	Variation variationParams `json:"variation"`
}

// GET /api/variations
//
// Three filter modes: ?word_ids=1,2,3 and ?word_id=1 return variations with
// their narrators; with no word filter the whole corpus comes back in reading
// order, optionally narrowed by ?mushaf_id= and ?narrator_ids=.
func (h *VariationHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	if raw := c.Query("word_ids"); raw != "" {
		variations, err := h.svc.ListByWordIDs(ctx, nil, parseUintList(raw))
		if err != nil {
			RespondServiceError(c, err)
			return
		}
		RespondOK(c, variations)
		return
	}

	if raw := c.Query("word_id"); raw != "" {
		wordID, err := parseUint(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid word id"})
			return
		}
		variations, err := h.svc.ListByWordIDs(ctx, nil, []uint{wordID})
		if err != nil {
			RespondServiceError(c, err)
			return
		}
		RespondOK(c, variations)
		return
	}

	var mushafID *uint
	if raw := c.Query("mushaf_id"); raw != "" {
		id, err := parseUint(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mushaf id"})
			return
		}
		mushafID = &id
	}
	var narratorIDs []uint
	if raw := c.Query("narrator_ids"); raw != "" {
		narratorIDs = parseUintList(raw)
	}
	variations, err := h.svc.ListGlobal(ctx, nil, mushafID, narratorIDs)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, variations)
}

// GET /api/variations/:id
func (h *VariationHandler) Show(c *gin.Context) {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid variation id"})
		return
	}
	variation, err := h.svc.Get(c.Request.Context(), nil, id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, variation)
}

// POST /api/variations
// Create-or-overwrite: a narrator has at most one variation per word.
func (h *VariationHandler) Create(c *gin.Context) {
	var req createVariationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	variation, err := h.svc.Upsert(c.Request.Context(), nil, req.Variation.WordID, req.Variation.NarratorID, req.Variation.Content)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, variation)
}

// DELETE /api/variations/:id
func (h *VariationHandler) Destroy(c *gin.Context) {
	id, err := parseUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid variation id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), nil, id); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/variations?word_id=&narrator_id=
func (h *VariationHandler) DestroyByKeys(c *gin.Context) {
	wordID, err := parseUint(c.Query("word_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid word id"})
		return
	}
	narratorID, err := parseUint(c.Query("narrator_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid narrator id"})
		return
	}
	if err := h.svc.DeleteByKeys(c.Request.Context(), nil, wordID, narratorID); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
