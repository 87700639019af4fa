package reservationRepo

import (
	"context"

	"hospitality/models"
)

// ReservationRepository defines methods for reservation data access. It is
// the sole writer of reservation records and of the active-stay references
// embedded on room documents.
type ReservationRepository interface {
	// CreateReservation atomically inserts the reservation and claims the
	// room for its date range. The overlap check against other active stays
	// happens at commit time inside the transaction; a conflicting stay
	// yields models.ErrRoomUnavailable.
	CreateReservation(ctx context.Context, res *models.Reservation) error
	// UpdateStatus moves a reservation from one of the allowed prior states
	// to the next lifecycle state. When releaseStay is true the room's
	// embedded stay reference is removed in the same transaction, freeing
	// the dates for new bookings.
	UpdateStatus(ctx context.Context, id string, allowedFrom []models.ReservationStatus, to models.ReservationStatus, releaseStay bool) (*models.Reservation, error)
	// GetByID retrieves a reservation by its unique ID.
	GetByID(id string) (*models.Reservation, error)
	// GetAll retrieves all reservations, unordered.
	GetAll() ([]models.Reservation, error)
	// GetActiveByRoomID retrieves the Confirmed/Checked In reservations for
	// a room.
	GetActiveByRoomID(roomID string) ([]models.Reservation, error)
	// GetCheckouts retrieves Checked In reservations departing on the given
	// day (YYYY-MM-DD).
	GetCheckouts(day string) ([]models.Reservation, error)
}
