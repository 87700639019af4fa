package handlers

import (
	"net/http"

	"hospitality/models"
	"hospitality/services/guest"

	"github.com/gin-gonic/gin"
)

// GuestHandler serves the guest directory endpoints.
type GuestHandler struct {
	Guests guest.GuestService
}

// RegisterGuest creates a guest profile, or returns the existing one with the
// same name.
func (h *GuestHandler) RegisterGuest(c *gin.Context) {
	var input struct {
		Name  string           `json:"name" binding:"required"`
		Email string           `json:"email"`
		Phone string           `json:"phone"`
		Type  models.GuestType `json:"type"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Type != "" && !models.ValidGuestType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown guest type"})
		return
	}

	g, err := h.Guests.RegisterGuest(input.Name, input.Email, input.Phone, input.Type)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// GetGuest returns one guest by ID.
func (h *GuestHandler) GetGuest(c *gin.Context) {
	g, err := h.Guests.GetGuest(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// ListGuests returns all guest profiles. A name query filters to the exact
// match.
func (h *GuestHandler) ListGuests(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		g, err := h.Guests.FindGuestByName(name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"guests": []interface{}{g}})
		return
	}

	guests, err := h.Guests.ListGuests()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guests": guests})
}
