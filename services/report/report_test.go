package report

import (
	"testing"

	"hospitality/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRoomRepo struct {
	rooms []models.Room
}

func (r *stubRoomRepo) Create(*models.Room) error                { return nil }
func (r *stubRoomRepo) GetByID(string) (*models.Room, error)     { return nil, models.ErrRoomNotFound }
func (r *stubRoomRepo) GetByNumber(string) (*models.Room, error) { return nil, models.ErrRoomNotFound }
func (r *stubRoomRepo) GetAll() ([]models.Room, error)           { return r.rooms, nil }
func (r *stubRoomRepo) GetByStatus(models.RoomStatus, models.RoomType) ([]models.Room, error) {
	return nil, nil
}
func (r *stubRoomRepo) UpdateStatus(string, models.RoomStatus) error { return nil }

func (r *stubRoomRepo) Count() (int64, error) { return int64(len(r.rooms)), nil }

func (r *stubRoomRepo) CountByStatus(status models.RoomStatus) (int64, error) {
	var n int64
	for _, room := range r.rooms {
		if room.Status == status {
			n++
		}
	}
	return n, nil
}

func TestGetRoomStats(t *testing.T) {
	repo := &stubRoomRepo{rooms: []models.Room{
		{ID: "r1", Status: models.RoomStatusOccupied},
		{ID: "r2", Status: models.RoomStatusOccupied},
		{ID: "r3", Status: models.RoomStatusAvailable},
		{ID: "r4", Status: models.RoomStatusDirty},
		{ID: "r5", Status: models.RoomStatusMaintenance},
	}}
	svc := NewReportService(repo)

	stats, err := svc.GetRoomStats()
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(2), stats.Occupied)
	assert.Equal(t, int64(1), stats.Available)
	assert.Equal(t, int64(1), stats.Dirty)
	assert.Equal(t, int64(1), stats.Maintenance)
	assert.InDelta(t, 0.4, stats.OccupancyRate, 1e-9)
}

func TestGetRoomStatsEmptyHotel(t *testing.T) {
	svc := NewReportService(&stubRoomRepo{})

	stats, err := svc.GetRoomStats()
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.Total)
	assert.Zero(t, stats.OccupancyRate)
}
