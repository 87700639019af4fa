package reservation

import (
	"context"
	"time"

	"hospitality/clock"
	"hospitality/database/repository/guest"
	"hospitality/database/repository/reservation"
	"hospitality/database/repository/room"
	"hospitality/models"
	"hospitality/services/pricing"
	"hospitality/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderScheduler enqueues a check-in reminder for a freshly booked stay.
// Scheduling failures never fail the booking.
type ReminderScheduler interface {
	ScheduleCheckInReminder(res *models.Reservation, guest *models.Guest, room *models.Room) error
}

// ReservationService owns the reservation lifecycle.
type ReservationService interface {
	// CreateReservation books a room for a guest over [checkIn, checkOut).
	// The total price is frozen from the room's current rate. A conflicting
	// active stay yields models.ErrRoomUnavailable.
	CreateReservation(ctx context.Context, guestID, roomID, checkIn, checkOut string) (*models.Reservation, error)
	// CheckIn moves a Confirmed reservation to Checked In.
	CheckIn(ctx context.Context, id string) (*models.Reservation, error)
	// CheckOut moves a Checked In reservation to Checked Out and frees the
	// room's dates.
	CheckOut(ctx context.Context, id string) (*models.Reservation, error)
	// Cancel moves a Confirmed reservation to Cancelled and frees the room's
	// dates. Checked-in guests cannot cancel; they check out.
	Cancel(ctx context.Context, id string) (*models.Reservation, error)
	// GetReservation retrieves a reservation by ID.
	GetReservation(id string) (*models.Reservation, error)
	// GetAllReservations retrieves every reservation on record.
	GetAllReservations() ([]models.Reservation, error)
	// GetCheckouts lists Checked In reservations departing on the given day,
	// defaulting to today when day is empty.
	GetCheckouts(day string) ([]models.Reservation, error)
}

// DefaultReservationService implements ReservationService.
type DefaultReservationService struct {
	reservations reservationRepo.ReservationRepository
	rooms        roomRepo.RoomRepository
	guests       guestRepo.GuestRepository
	clk          clock.Clock
	reminders    ReminderScheduler
}

// NewReservationService creates a ReservationService. reminders may be nil
// when no queue is configured.
func NewReservationService(
	reservations reservationRepo.ReservationRepository,
	rooms roomRepo.RoomRepository,
	guests guestRepo.GuestRepository,
	clk clock.Clock,
	reminders ReminderScheduler,
) *DefaultReservationService {
	return &DefaultReservationService{
		reservations: reservations,
		rooms:        rooms,
		guests:       guests,
		clk:          clk,
		reminders:    reminders,
	}
}

// CreateReservation validates the request, prices the stay, and hands the
// insert to the transactional repository. There is deliberately no
// availability pre-check here: between a read and a write another booking can
// land, so the only overlap check that counts is the one inside the
// transaction.
func (s *DefaultReservationService) CreateReservation(ctx context.Context, guestID, roomID, checkIn, checkOut string) (*models.Reservation, error) {
	nights, err := models.Nights(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if nights < 1 {
		return nil, models.ErrInvalidDateRange
	}

	guest, err := s.guests.GetByID(guestID)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.GetByID(roomID)
	if err != nil {
		return nil, err
	}

	total, err := pricing.ComputeStayTotal(room.RateCents, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	res := &models.Reservation{
		ID:              uuid.New().String(),
		GuestID:         guest.ID,
		RoomID:          room.ID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		TotalPriceCents: total,
		Status:          models.ReservationConfirmed,
		CreatedAt:       s.clk.Now(),
	}

	if err := s.reservations.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Reservation created",
		zap.String("reservationID", res.ID),
		zap.String("room", room.Number),
		zap.String("checkIn", checkIn),
		zap.String("checkOut", checkOut),
		zap.Int64("totalCents", total),
	)

	s.scheduleReminder(res, guest, room)
	return res, nil
}

func (s *DefaultReservationService) scheduleReminder(res *models.Reservation, guest *models.Guest, room *models.Room) {
	if s.reminders == nil || guest.Email == "" {
		return
	}
	if err := s.reminders.ScheduleCheckInReminder(res, guest, room); err != nil {
		utils.GetLogger().Warn("Failed to schedule check-in reminder",
			zap.String("reservationID", res.ID), zap.Error(err))
	}
}

// CheckIn moves a Confirmed reservation to Checked In. The stay reference
// stays on the room; the guest still holds the dates.
func (s *DefaultReservationService) CheckIn(ctx context.Context, id string) (*models.Reservation, error) {
	return s.reservations.UpdateStatus(ctx, id,
		[]models.ReservationStatus{models.ReservationConfirmed},
		models.ReservationCheckedIn, false)
}

// CheckOut moves a Checked In reservation to Checked Out and releases the
// room's stay reference, so the dates open up the instant the guest leaves.
func (s *DefaultReservationService) CheckOut(ctx context.Context, id string) (*models.Reservation, error) {
	return s.reservations.UpdateStatus(ctx, id,
		[]models.ReservationStatus{models.ReservationCheckedIn},
		models.ReservationCheckedOut, true)
}

// Cancel moves a Confirmed reservation to Cancelled and releases the room's
// stay reference.
func (s *DefaultReservationService) Cancel(ctx context.Context, id string) (*models.Reservation, error) {
	return s.reservations.UpdateStatus(ctx, id,
		[]models.ReservationStatus{models.ReservationConfirmed},
		models.ReservationCancelled, true)
}

// GetReservation retrieves a reservation by ID.
func (s *DefaultReservationService) GetReservation(id string) (*models.Reservation, error) {
	return s.reservations.GetByID(id)
}

// GetAllReservations retrieves every reservation on record.
func (s *DefaultReservationService) GetAllReservations() ([]models.Reservation, error) {
	return s.reservations.GetAll()
}

// GetCheckouts lists today's departures, or the given day's.
func (s *DefaultReservationService) GetCheckouts(day string) ([]models.Reservation, error) {
	if day == "" {
		day = clock.Today(s.clk)
	} else if _, err := time.Parse(models.DateLayout, day); err != nil {
		return nil, models.ErrInvalidDateRange
	}
	return s.reservations.GetCheckouts(day)
}
