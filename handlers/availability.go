package handlers

import (
	"net/http"

	"hospitality/models"
	"hospitality/services/availability"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves availability queries.
type AvailabilityHandler struct {
	Availability availability.AvailabilityService
}

// Query lists rooms free for [check_in, check_out), optionally filtered by
// type. The answer is advisory; booking re-checks inside the transaction.
func (h *AvailabilityHandler) Query(c *gin.Context) {
	checkIn := c.Query("check_in")
	checkOut := c.Query("check_out")
	roomType := models.RoomType(c.Query("type"))

	if checkIn == "" || checkOut == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_in and check_out are required (YYYY-MM-DD)"})
		return
	}
	if roomType != "" && !models.ValidRoomType(roomType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown room type"})
		return
	}

	rooms, err := h.Availability.Query(roomType, checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"check_in":  checkIn,
		"check_out": checkOut,
		"rooms":     rooms,
	})
}
