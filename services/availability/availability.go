package availability

import (
	"hospitality/database/repository/room"
	"hospitality/models"
)

// AvailabilityService answers "which rooms can take this stay". Its answer is
// advisory: the authoritative overlap check happens again inside the booking
// transaction, so a room listed here can still be lost to a concurrent guest.
type AvailabilityService interface {
	// Query returns rooms free for the half-open range [checkIn, checkOut),
	// optionally filtered by room type (empty means all types), ordered by
	// room number.
	Query(roomType models.RoomType, checkIn, checkOut string) ([]models.Room, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	rooms roomRepo.RoomRepository
}

// NewAvailabilityService creates an AvailabilityService.
func NewAvailabilityService(rooms roomRepo.RoomRepository) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{rooms: rooms}
}

// Query applies two independent gates: the housekeeping flag must be
// Available, and no active stay on the room may overlap the requested range.
// A checkout on the requested check-in day does not block the room.
func (s *DefaultAvailabilityService) Query(roomType models.RoomType, checkIn, checkOut string) ([]models.Room, error) {
	nights, err := models.Nights(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if nights < 1 {
		return nil, models.ErrInvalidDateRange
	}

	candidates, err := s.rooms.GetByStatus(models.RoomStatusAvailable, roomType)
	if err != nil {
		return nil, err
	}

	free := make([]models.Room, 0, len(candidates))
	for _, room := range candidates {
		if stayConflicts(room.ActiveStays, checkIn, checkOut) {
			continue
		}
		free = append(free, room)
	}
	return free, nil
}

func stayConflicts(stays []models.StayRef, checkIn, checkOut string) bool {
	for _, stay := range stays {
		if models.RangesOverlap(stay.CheckIn, stay.CheckOut, checkIn, checkOut) {
			return true
		}
	}
	return false
}
