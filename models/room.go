package models

import "time"

// RoomType is the closed set of room categories.
type RoomType string

const (
	RoomTypeStandard RoomType = "Standard"
	RoomTypeDeluxe   RoomType = "Deluxe"
	RoomTypeSuite    RoomType = "Suite"
)

// ValidRoomType reports whether t is one of the known categories.
func ValidRoomType(t RoomType) bool {
	switch t {
	case RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite:
		return true
	}
	return false
}

// RoomStatus is the housekeeping flag on a room. It is independent of
// reservations: a room can be free of bookings yet Dirty, or booking-free
// today yet still marked Occupied by an earlier workflow.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "Available"
	RoomStatusOccupied    RoomStatus = "Occupied"
	RoomStatusDirty       RoomStatus = "Dirty"
	RoomStatusMaintenance RoomStatus = "Maintenance"
)

// ValidRoomStatus reports whether s is one of the known housekeeping states.
func ValidRoomStatus(s RoomStatus) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusDirty, RoomStatusMaintenance:
		return true
	}
	return false
}

// StayRef is a compact reference to an active reservation, embedded on the
// room document so the booking transaction can reject overlapping stays with
// a single guarded update.
type StayRef struct {
	ReservationID string `bson:"reservation_id" json:"reservation_id"`
	CheckIn       string `bson:"check_in" json:"check_in"`
	CheckOut      string `bson:"check_out" json:"check_out"`
}

// Room is a physical room in the hotel inventory. Rooms are created once at
// inventory seeding and never deleted; only Status changes afterwards.
type Room struct {
	ID          string     `bson:"id" json:"id"`
	Number      string     `bson:"number" json:"number"`
	Type        RoomType   `bson:"type" json:"type"`
	RateCents   int64      `bson:"rate_cents" json:"rate_cents"` // nightly rate in minor currency units
	Status      RoomStatus `bson:"status" json:"status"`
	Features    []string   `bson:"features,omitempty" json:"features,omitempty"`
	ActiveStays []StayRef  `bson:"active_stays" json:"-"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}
