package reservation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hospitality/clock"
	"hospitality/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc     *DefaultReservationService
	store   *fakeStore
	rooms   *fakeRoomRepo
	guests  *fakeGuestRepo
	resRepo *fakeReservationRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newFakeStore()
	rooms := &fakeRoomRepo{store: store}
	guests := newFakeGuestRepo()
	resRepo := &fakeReservationRepo{store: store}

	require.NoError(t, rooms.Create(&models.Room{
		ID: "room-101", Number: "101", Type: models.RoomTypeStandard,
		RateCents: 80000, Status: models.RoomStatusAvailable,
	}))
	require.NoError(t, guests.Create(&models.Guest{
		ID: "guest-1", Name: "Asha Patel", Email: "asha@example.com", Type: models.GuestTypeWalkIn,
	}))

	clk := clock.NewFixed(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	return &fixture{
		svc:     NewReservationService(resRepo, rooms, guests, clk, nil),
		store:   store,
		rooms:   rooms,
		guests:  guests,
		resRepo: resRepo,
	}
}

func TestCreateReservation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.CreateReservation(ctx, "guest-1", "room-101", "2024-03-10", "2024-03-12")
	require.NoError(t, err)

	assert.Equal(t, models.ReservationConfirmed, res.Status)
	assert.Equal(t, int64(160000), res.TotalPriceCents)
	assert.Equal(t, "2024-03-01", res.CreatedAt.Format(models.DateLayout))

	stored, err := f.resRepo.GetByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.TotalPriceCents, stored.TotalPriceCents)
}

func TestCreateReservationRejectsOverlap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateReservation(ctx, "guest-1", "room-101", "2024-03-10", "2024-03-13")
	require.NoError(t, err)

	_, err = f.svc.CreateReservation(ctx, "guest-1", "room-101", "2024-03-12", "2024-03-14")
	require.ErrorIs(t, err, models.ErrRoomUnavailable)
}

func TestCreateReservationAllowsSameDayTurnover(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateReservation(ctx, "guest-1", "room-101", "2024-03-10", "2024-03-12")
	require.NoError(t, err)

	// Back-to-back: the new guest arrives the day the first one leaves.
	_, err = f.svc.CreateReservation(ctx, "guest-1", "room-101", "2024-03-12", "2024-03-14")
	require.NoError(t, err)
}

func TestCreateReservationValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("unknown guest", func(t *testing.T) {
		_, err := f.svc.CreateReservation(ctx, "nobody", "room-101", "2024-03-10", "2024-03-12")
		require.ErrorIs(t, err, models.ErrGuestNotFound)
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := f.svc.CreateReservation(ctx, "guest-1", "room-999", "2024-03-10", "2024-03-12")
		require.ErrorIs(t, err, models.ErrRoomNotFound)
	})

	t.Run("zero night stay", func(t *testing.T) {
		_, err := f.svc.CreateReservation(ctx, "guest-1", "room-101", "2024-03-10", "2024-03-10")
		require.ErrorIs(t, err, models.ErrInvalidDateRange)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := f.svc.CreateReservation(ctx, "guest-1", "room-101", "2024-03-12", "2024-03-10")
		require.ErrorIs(t, err, models.ErrInvalidDateRange)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := f.svc.CreateReservation(ctx, "guest-1", "room-101", "10/03/2024", "2024-03-12")
		require.ErrorIs(t, err, models.ErrInvalidDateRange)
	})
}

// The stored total is frozen at booking time; a later rate change must not
// reprice existing reservations.
func TestTotalPriceFrozenAtBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.CreateReservation(ctx, "guest-1", "room-101", "2024-03-10", "2024-03-12")
	require.NoError(t, err)
	require.Equal(t, int64(160000), res.TotalPriceCents)

	f.store.mu.Lock()
	f.store.rooms["room-101"].RateCents = 95000
	f.store.mu.Unlock()

	stored, err := f.resRepo.GetByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(160000), stored.TotalPriceCents)
}

func TestReservationLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.CreateReservation(ctx, "guest-1", "room-101", "2024-03-10", "2024-03-12")
	require.NoError(t, err)

	t.Run("check in", func(t *testing.T) {
		updated, err := f.svc.CheckIn(ctx, res.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ReservationCheckedIn, updated.Status)
	})

	t.Run("cancel after check-in rejected", func(t *testing.T) {
		_, err := f.svc.Cancel(ctx, res.ID)
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run("double check-in rejected", func(t *testing.T) {
		_, err := f.svc.CheckIn(ctx, res.ID)
		require.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run("check out", func(t *testing.T) {
		updated, err := f.svc.CheckOut(ctx, res.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ReservationCheckedOut, updated.Status)
	})

	t.Run("check out frees the dates", func(t *testing.T) {
		_, err := f.svc.CreateReservation(ctx, "guest-1", "room-101", "2024-03-10", "2024-03-12")
		require.NoError(t, err)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		_, err := f.svc.CheckIn(ctx, "missing")
		require.ErrorIs(t, err, models.ErrReservationNotFound)
	})
}

func TestCancelFreesDates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateReservation(ctx, "guest-1", "room-101", "2024-03-10", "2024-03-12")
	require.NoError(t, err)

	_, err = f.svc.CreateReservation(ctx, "guest-1", "room-101", "2024-03-11", "2024-03-13")
	require.ErrorIs(t, err, models.ErrRoomUnavailable)

	cancelled, err := f.svc.Cancel(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCancelled, cancelled.Status)

	_, err = f.svc.CreateReservation(ctx, "guest-1", "room-101", "2024-03-11", "2024-03-13")
	require.NoError(t, err)
}

// Two goroutines race for the same room and dates. Exactly one booking may
// win; the loser must see the room-unavailable outcome, never a double book.
func TestConcurrentBookingsSameRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.CreateReservation(ctx, "guest-1", "room-101", "2024-03-10", "2024-03-12")
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, models.ErrRoomUnavailable):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, conflicts)

	all, err := f.resRepo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetCheckouts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.CreateReservation(ctx, "guest-1", "room-101", "2024-02-28", "2024-03-01")
	require.NoError(t, err)
	_, err = f.svc.CheckIn(ctx, res.ID)
	require.NoError(t, err)

	// A Confirmed reservation ending the same day must not count as a
	// departure: that guest never arrived.
	require.NoError(t, f.rooms.Create(&models.Room{
		ID: "room-102", Number: "102", Type: models.RoomTypeStandard,
		RateCents: 80000, Status: models.RoomStatusAvailable,
	}))
	_, err = f.svc.CreateReservation(ctx, "guest-1", "room-102", "2024-02-28", "2024-03-01")
	require.NoError(t, err)

	t.Run("defaults to today", func(t *testing.T) {
		out, err := f.svc.GetCheckouts("")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, res.ID, out[0].ID)
	})

	t.Run("explicit day", func(t *testing.T) {
		out, err := f.svc.GetCheckouts("2024-03-02")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("malformed day", func(t *testing.T) {
		_, err := f.svc.GetCheckouts("yesterday")
		require.ErrorIs(t, err, models.ErrInvalidDateRange)
	})
}
