package availability

import (
	"testing"

	"hospitality/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRoomRepo struct {
	rooms []models.Room
}

func (r *stubRoomRepo) Create(*models.Room) error                  { return nil }
func (r *stubRoomRepo) GetByID(string) (*models.Room, error)       { return nil, models.ErrRoomNotFound }
func (r *stubRoomRepo) GetByNumber(string) (*models.Room, error)   { return nil, models.ErrRoomNotFound }
func (r *stubRoomRepo) GetAll() ([]models.Room, error)             { return r.rooms, nil }
func (r *stubRoomRepo) Count() (int64, error)                      { return int64(len(r.rooms)), nil }
func (r *stubRoomRepo) CountByStatus(models.RoomStatus) (int64, error) { return 0, nil }
func (r *stubRoomRepo) UpdateStatus(string, models.RoomStatus) error   { return nil }

func (r *stubRoomRepo) GetByStatus(status models.RoomStatus, roomType models.RoomType) ([]models.Room, error) {
	var out []models.Room
	for _, room := range r.rooms {
		if room.Status != status {
			continue
		}
		if roomType != "" && room.Type != roomType {
			continue
		}
		out = append(out, room)
	}
	return out, nil
}

func TestQuery(t *testing.T) {
	repo := &stubRoomRepo{rooms: []models.Room{
		{
			ID: "r1", Number: "101", Type: models.RoomTypeStandard,
			RateCents: 80000, Status: models.RoomStatusAvailable,
		},
		{
			ID: "r2", Number: "102", Type: models.RoomTypeStandard,
			RateCents: 80000, Status: models.RoomStatusAvailable,
			ActiveStays: []models.StayRef{
				{ReservationID: "res-1", CheckIn: "2024-03-10", CheckOut: "2024-03-12"},
			},
		},
		{
			ID: "r3", Number: "201", Type: models.RoomTypeDeluxe,
			RateCents: 120000, Status: models.RoomStatusMaintenance,
		},
		{
			ID: "r4", Number: "301", Type: models.RoomTypeSuite,
			RateCents: 200000, Status: models.RoomStatusAvailable,
		},
	}}
	svc := NewAvailabilityService(repo)

	t.Run("excludes booked and out-of-service rooms", func(t *testing.T) {
		rooms, err := svc.Query("", "2024-03-10", "2024-03-12")
		require.NoError(t, err)
		ids := roomIDs(rooms)
		assert.ElementsMatch(t, []string{"r1", "r4"}, ids)
	})

	t.Run("same-day turnover does not block", func(t *testing.T) {
		rooms, err := svc.Query("", "2024-03-12", "2024-03-14")
		require.NoError(t, err)
		assert.Contains(t, roomIDs(rooms), "r2")
	})

	t.Run("filter by type", func(t *testing.T) {
		rooms, err := svc.Query(models.RoomTypeSuite, "2024-03-10", "2024-03-12")
		require.NoError(t, err)
		assert.Equal(t, []string{"r4"}, roomIDs(rooms))
	})

	t.Run("maintenance room stays hidden even with no bookings", func(t *testing.T) {
		rooms, err := svc.Query(models.RoomTypeDeluxe, "2024-03-10", "2024-03-12")
		require.NoError(t, err)
		assert.Empty(t, rooms)
	})

	t.Run("zero night range rejected", func(t *testing.T) {
		_, err := svc.Query("", "2024-03-10", "2024-03-10")
		require.ErrorIs(t, err, models.ErrInvalidDateRange)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		_, err := svc.Query("", "next tuesday", "2024-03-12")
		require.ErrorIs(t, err, models.ErrInvalidDateRange)
	})
}

func roomIDs(rooms []models.Room) []string {
	ids := make([]string, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}
