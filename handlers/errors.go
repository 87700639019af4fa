package handlers

import (
	"errors"
	"net/http"

	"hospitality/models"
	"hospitality/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP statuses. Anything unrecognized is
// a store-level failure and surfaces as a 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidDateRange):
		utils.JSONError(c, http.StatusBadRequest, "Invalid date range", err.Error())
	case errors.Is(err, models.ErrRoomNotFound),
		errors.Is(err, models.ErrGuestNotFound),
		errors.Is(err, models.ErrReservationNotFound),
		errors.Is(err, models.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, models.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusConflict, "Room unavailable", err.Error())
	case errors.Is(err, models.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "Invalid status transition", err.Error())
	case errors.Is(err, models.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, "Email already registered", err.Error())
	case errors.Is(err, models.ErrUserNotVerified):
		utils.JSONError(c, http.StatusForbidden, "Account not verified", err.Error())
	case errors.Is(err, models.ErrInvalidOTP):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid verification code", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}
