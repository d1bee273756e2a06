package handlers

import (
	"net/http"

	"github.com/gujaratishikho/backend/internal/core/coach"
	"github.com/gujaratishikho/backend/pkg/types"

	"github.com/gin-gonic/gin"
)

type CoachHandler struct {
	Coach *coach.Client
}

func NewCoachHandler(c *coach.Client) *CoachHandler {
	return &CoachHandler{Coach: c}
}

// Example is POST /v1/coach: one generated practice sentence for a word.
func (h *CoachHandler) Example(c *gin.Context) {
	if h.Coach == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "coach not configured"})
		return
	}
	var req types.CoachReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	if req.Word == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word required"})
		return
	}
	ex, err := h.Coach.ExampleSentence(c.Request.Context(), req.Word)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "coach_failed"})
		return
	}
	c.JSON(http.StatusOK, ex)
}
