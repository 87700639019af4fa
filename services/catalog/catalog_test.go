package catalog

import (
	"sort"
	"testing"

	"hospitality/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRoomRepo struct {
	rooms map[string]*models.Room
}

func newMemRoomRepo() *memRoomRepo {
	return &memRoomRepo{rooms: make(map[string]*models.Room)}
}

func (r *memRoomRepo) Create(room *models.Room) error {
	r.rooms[room.ID] = room
	return nil
}

func (r *memRoomRepo) GetByID(id string) (*models.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, models.ErrRoomNotFound
	}
	return room, nil
}

func (r *memRoomRepo) GetByNumber(number string) (*models.Room, error) {
	for _, room := range r.rooms {
		if room.Number == number {
			return room, nil
		}
	}
	return nil, models.ErrRoomNotFound
}

func (r *memRoomRepo) GetAll() ([]models.Room, error) {
	out := make([]models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, *room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r *memRoomRepo) GetByStatus(models.RoomStatus, models.RoomType) ([]models.Room, error) {
	return nil, nil
}

func (r *memRoomRepo) Count() (int64, error) { return int64(len(r.rooms)), nil }

func (r *memRoomRepo) CountByStatus(status models.RoomStatus) (int64, error) {
	var n int64
	for _, room := range r.rooms {
		if room.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memRoomRepo) UpdateStatus(id string, status models.RoomStatus) error {
	room, ok := r.rooms[id]
	if !ok {
		return models.ErrRoomNotFound
	}
	room.Status = status
	return nil
}

func TestSeedInventory(t *testing.T) {
	repo := newMemRoomRepo()
	svc := NewCatalogService(repo)

	require.NoError(t, svc.SeedInventory())

	rooms, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, rooms, 18)

	byType := make(map[models.RoomType]int)
	for _, room := range rooms {
		byType[room.Type]++
		assert.Equal(t, models.RoomStatusAvailable, room.Status)
		assert.NotEmpty(t, room.ID)
	}
	assert.Equal(t, 8, byType[models.RoomTypeStandard])
	assert.Equal(t, 6, byType[models.RoomTypeDeluxe])
	assert.Equal(t, 4, byType[models.RoomTypeSuite])

	// Room numbers encode the floor per type block.
	first, err := repo.GetByNumber("101")
	require.NoError(t, err)
	assert.Equal(t, models.RoomTypeStandard, first.Type)
	assert.Equal(t, int64(80000), first.RateCents)

	suite, err := repo.GetByNumber("304")
	require.NoError(t, err)
	assert.Equal(t, models.RoomTypeSuite, suite.Type)
	assert.Equal(t, int64(200000), suite.RateCents)
}

func TestListRoomsTypeFilter(t *testing.T) {
	repo := newMemRoomRepo()
	svc := NewCatalogService(repo)
	require.NoError(t, svc.SeedInventory())

	suites, err := svc.ListRooms(models.RoomTypeSuite)
	require.NoError(t, err)
	require.Len(t, suites, 4)
	for _, room := range suites {
		assert.Equal(t, models.RoomTypeSuite, room.Type)
	}

	all, err := svc.ListRooms("")
	require.NoError(t, err)
	assert.Len(t, all, 18)
}

func TestSeedInventoryIsIdempotent(t *testing.T) {
	repo := newMemRoomRepo()
	svc := NewCatalogService(repo)

	require.NoError(t, svc.SeedInventory())
	require.NoError(t, svc.SeedInventory())

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(18), n)
}

func TestUpdateRoomStatus(t *testing.T) {
	repo := newMemRoomRepo()
	svc := NewCatalogService(repo)
	require.NoError(t, svc.SeedInventory())

	room, err := repo.GetByNumber("102")
	require.NoError(t, err)

	updated, err := svc.UpdateRoomStatus(room.ID, models.RoomStatusDirty)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusDirty, updated.Status)

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := svc.UpdateRoomStatus(room.ID, "Sparkling")
		require.Error(t, err)
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := svc.UpdateRoomStatus("missing", models.RoomStatusAvailable)
		require.ErrorIs(t, err, models.ErrRoomNotFound)
	})
}
