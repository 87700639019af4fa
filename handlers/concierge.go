package handlers

import (
	"net/http"

	"hospitality/models"
	"hospitality/services/concierge"

	"github.com/gin-gonic/gin"
)

// ConciergeHandler serves the conversational concierge endpoint.
type ConciergeHandler struct {
	Concierge concierge.ConciergeService
}

// Chat processes one conversation turn.
func (h *ConciergeHandler) Chat(c *gin.Context) {
	var req models.AIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	if req.UserID == "" {
		// Anonymous lobby kiosks share one context bucket.
		req.UserID = "anonymous"
	}

	resp, err := h.Concierge.ProcessUserInput(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
