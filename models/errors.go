package models

import "errors"

// Sentinel errors shared across services and repositories. Callers are
// expected to inspect them with errors.Is rather than string matching.
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrGuestNotFound       = errors.New("guest not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUserNotFound        = errors.New("user not found")

	// ErrInvalidDateRange is returned when a stay is shorter than one night
	// or a date is not in YYYY-MM-DD form.
	ErrInvalidDateRange = errors.New("invalid date range: stay must be at least one night")

	// ErrRoomUnavailable is returned when the commit-time overlap check finds
	// a conflicting active reservation. It is an expected outcome: the caller
	// should re-query availability and pick other dates or another room.
	ErrRoomUnavailable = errors.New("room is not available for the requested dates")

	// ErrInvalidTransition is returned for a status change outside the
	// Confirmed -> Checked In -> Checked Out / Cancelled lifecycle.
	ErrInvalidTransition = errors.New("invalid reservation status transition")

	ErrEmailTaken      = errors.New("email already registered")
	ErrUserNotVerified = errors.New("account email is not verified")
	ErrInvalidOTP      = errors.New("invalid or expired verification code")
)
