package handlers

import (
	"net/http"
	"strconv"

	"github.com/gujaratishikho/backend/internal/core/content"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the static learning catalog.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler { return &ContentHandler{} }

func (h *ContentHandler) Voices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"voices": content.VoiceOptions})
}

func (h *ContentHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": content.Categories})
}

func (h *ContentHandler) Sentences(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sentences": content.Sentences})
}

func (h *ContentHandler) Conversations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"conversations": content.Conversations})
}

// Alphabet serves the phonetic guide one page at a time, the way the app
// presents it. Out-of-range values clamp rather than error.
func (h *ContentHandler) Alphabet(c *gin.Context) {
	total := len(content.Alphabet)

	per, err := strconv.Atoi(c.DefaultQuery("per", "10"))
	if err != nil || per < 1 {
		per = 10
	}
	if per > total {
		per = total
	}
	pages := (total + per - 1) / per

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * per
	end := start + per
	if end > total {
		end = total
	}
	c.JSON(http.StatusOK, gin.H{
		"alphabet": content.Alphabet[start:end],
		"page":     page,
		"pages":    pages,
		"total":    total,
	})
}
