package handlers

import (
	"net/http"

	"hospitality/models"
	"hospitality/services/catalog"

	"github.com/gin-gonic/gin"
)

// RoomHandler serves the room inventory endpoints.
type RoomHandler struct {
	Catalog catalog.CatalogService
}

// ListRooms returns the inventory ordered by room number, optionally
// filtered by type.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	roomType := models.RoomType(c.Query("type"))
	if roomType != "" && !models.ValidRoomType(roomType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown room type"})
		return
	}

	rooms, err := h.Catalog.ListRooms(roomType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// SeedInventory creates the default room inventory. No-op when rooms exist.
func (h *RoomHandler) SeedInventory(c *gin.Context) {
	if err := h.Catalog.SeedInventory(); err != nil {
		respondError(c, err)
		return
	}
	rooms, err := h.Catalog.ListRooms("")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "inventory ready", "rooms": len(rooms)})
}

// GetRoom returns one room by ID.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.Catalog.GetRoom(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// UpdateRoomStatus sets the housekeeping flag on a room.
func (h *RoomHandler) UpdateRoomStatus(c *gin.Context) {
	var input struct {
		Status models.RoomStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !models.ValidRoomStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown room status"})
		return
	}

	room, err := h.Catalog.UpdateRoomStatus(c.Param("id"), input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}
