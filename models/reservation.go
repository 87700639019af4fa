package models

import "time"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationConfirmed  ReservationStatus = "Confirmed"
	ReservationCheckedIn  ReservationStatus = "Checked In"
	ReservationCheckedOut ReservationStatus = "Checked Out"
	ReservationCancelled  ReservationStatus = "Cancelled"
)

// IsActive reports whether the status counts toward overlap conflicts.
// Checked Out and Cancelled never block new bookings on the same dates.
func (s ReservationStatus) IsActive() bool {
	return s == ReservationConfirmed || s == ReservationCheckedIn
}

// CanTransitionTo enforces the monotonic lifecycle:
// Confirmed -> Checked In -> Checked Out, or Confirmed -> Cancelled.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	switch s {
	case ReservationConfirmed:
		return next == ReservationCheckedIn || next == ReservationCancelled
	case ReservationCheckedIn:
		return next == ReservationCheckedOut
	}
	return false
}

// Reservation is a guest's stay in a specific room over [CheckIn, CheckOut).
// TotalPriceCents is frozen at creation from the room's rate at that instant
// and is never recomputed, even if the rate later changes.
type Reservation struct {
	ID              string            `bson:"id" json:"id"`
	GuestID         string            `bson:"guest_id" json:"guest_id"`
	RoomID          string            `bson:"room_id" json:"room_id"`
	CheckIn         string            `bson:"check_in" json:"check_in"`
	CheckOut        string            `bson:"check_out" json:"check_out"`
	TotalPriceCents int64             `bson:"total_price_cents" json:"total_price_cents"`
	Status          ReservationStatus `bson:"status" json:"status"`
	CreatedAt       time.Time         `bson:"created_at" json:"created_at"`
}

// Overlaps reports whether the reservation's interval conflicts with the
// half-open range [checkIn, checkOut).
func (r *Reservation) Overlaps(checkIn, checkOut string) bool {
	return RangesOverlap(r.CheckIn, r.CheckOut, checkIn, checkOut)
}
