package handlers

import (
	"net/http"

	"github.com/gujaratishikho/backend/internal/core/tts"
	"github.com/gujaratishikho/backend/pkg/types"

	"github.com/gin-gonic/gin"
)

type TTSHandler struct {
	Gateway *tts.Gateway
}

func NewTTSHandler(g *tts.Gateway) *TTSHandler {
	return &TTSHandler{Gateway: g}
}

// Synthesize is POST /api/tts. The credential check runs before the body is
// parsed; a misconfigured server answers 500 no matter what the caller sent.
func (h *TTSHandler) Synthesize(c *gin.Context) {
	if !h.Gateway.Configured() {
		e := tts.ErrMisconfigured()
		c.JSON(e.Status, gin.H{"error": e.Message})
		return
	}

	var req types.SynthesizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	audio, synthErr := h.Gateway.Synthesize(c.Request.Context(), req)
	if synthErr != nil {
		c.JSON(synthErr.Status, gin.H{"error": synthErr.Message})
		return
	}

	// A hint to shared HTTP caches; the client keeps its own playback cache.
	c.Header("Cache-Control", "public, max-age=86400")
	c.JSON(http.StatusOK, types.SynthesizeResponse{AudioContent: audio})
}
