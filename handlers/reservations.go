package handlers

import (
	"net/http"

	"hospitality/services/reservation"

	"github.com/gin-gonic/gin"
)

// ReservationHandler serves the reservation lifecycle endpoints.
type ReservationHandler struct {
	Reservations reservation.ReservationService
}

// CreateReservation books a room for a guest.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var input struct {
		GuestID  string `json:"guest_id" binding:"required"`
		RoomID   string `json:"room_id" binding:"required"`
		CheckIn  string `json:"check_in" binding:"required"`
		CheckOut string `json:"check_out" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := h.Reservations.CreateReservation(c.Request.Context(), input.GuestID, input.RoomID, input.CheckIn, input.CheckOut)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GetReservation returns one reservation by ID.
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	res, err := h.Reservations.GetReservation(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListReservations returns every reservation on record.
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	reservations, err := h.Reservations.GetAllReservations()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// CheckIn moves a Confirmed reservation to Checked In.
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	res, err := h.Reservations.CheckIn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CheckOut moves a Checked In reservation to Checked Out.
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	res, err := h.Reservations.CheckOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Cancel moves a Confirmed reservation to Cancelled.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	res, err := h.Reservations.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListCheckouts returns the day's departing guests. Defaults to today.
func (h *ReservationHandler) ListCheckouts(c *gin.Context) {
	checkouts, err := h.Reservations.GetCheckouts(c.Query("day"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkouts": checkouts, "count": len(checkouts)})
}
