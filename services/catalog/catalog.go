package catalog

import (
	"fmt"

	"hospitality/database/repository/room"
	"hospitality/models"
	"hospitality/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService manages the room inventory and its housekeeping status.
type CatalogService interface {
	// SeedInventory creates the default room inventory. It is a no-op when
	// any rooms already exist, so restarts never duplicate rooms.
	SeedInventory() error
	// GetRoom retrieves a room by ID.
	GetRoom(id string) (*models.Room, error)
	// GetRoomByNumber retrieves a room by its human-facing number.
	GetRoomByNumber(number string) (*models.Room, error)
	// ListRooms retrieves the inventory ordered by room number, optionally
	// filtered by type (empty means all types).
	ListRooms(roomType models.RoomType) ([]models.Room, error)
	// UpdateRoomStatus sets the housekeeping flag on a room.
	UpdateRoomStatus(id string, status models.RoomStatus) (*models.Room, error)
}

// DefaultCatalogService implements CatalogService over a room repository.
type DefaultCatalogService struct {
	repo roomRepo.RoomRepository
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(repo roomRepo.RoomRepository) *DefaultCatalogService {
	return &DefaultCatalogService{repo: repo}
}

// seedSpec describes one block of identical rooms in the default inventory.
type seedSpec struct {
	count        int
	numberPrefix string
	roomType     models.RoomType
	rateCents    int64
	features     []string
}

// defaultInventory is the opening room block: numbers encode the floor, so
// Standard rooms live on floor 1, Deluxe on 2, Suites on 3.
var defaultInventory = []seedSpec{
	{count: 8, numberPrefix: "1", roomType: models.RoomTypeStandard, rateCents: 80000, features: []string{"wifi", "tv"}},
	{count: 6, numberPrefix: "2", roomType: models.RoomTypeDeluxe, rateCents: 120000, features: []string{"wifi", "tv", "minibar", "city view"}},
	{count: 4, numberPrefix: "3", roomType: models.RoomTypeSuite, rateCents: 200000, features: []string{"wifi", "tv", "minibar", "city view", "jacuzzi"}},
}

// SeedInventory populates the room collection with the default inventory.
func (s *DefaultCatalogService) SeedInventory() error {
	logger := utils.GetLogger()

	n, err := s.repo.Count()
	if err != nil {
		return fmt.Errorf("failed to check inventory: %w", err)
	}
	if n > 0 {
		logger.Info("Room inventory already seeded", zap.Int64("rooms", n))
		return nil
	}

	created := 0
	for _, spec := range defaultInventory {
		for i := 1; i <= spec.count; i++ {
			room := &models.Room{
				ID:        uuid.New().String(),
				Number:    fmt.Sprintf("%s%02d", spec.numberPrefix, i),
				Type:      spec.roomType,
				RateCents: spec.rateCents,
				Status:    models.RoomStatusAvailable,
				Features:  spec.features,
			}
			if err := s.repo.Create(room); err != nil {
				return fmt.Errorf("failed to seed room %s: %w", room.Number, err)
			}
			created++
		}
	}

	logger.Info("Seeded room inventory", zap.Int("rooms", created))
	return nil
}

// GetRoom retrieves a room by ID.
func (s *DefaultCatalogService) GetRoom(id string) (*models.Room, error) {
	return s.repo.GetByID(id)
}

// GetRoomByNumber retrieves a room by its human-facing number.
func (s *DefaultCatalogService) GetRoomByNumber(number string) (*models.Room, error) {
	return s.repo.GetByNumber(number)
}

// ListRooms retrieves the inventory, optionally filtered by type.
func (s *DefaultCatalogService) ListRooms(roomType models.RoomType) ([]models.Room, error) {
	rooms, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if roomType == "" {
		return rooms, nil
	}
	filtered := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Type == roomType {
			filtered = append(filtered, room)
		}
	}
	return filtered, nil
}

// UpdateRoomStatus sets the housekeeping flag and returns the updated room.
func (s *DefaultCatalogService) UpdateRoomStatus(id string, status models.RoomStatus) (*models.Room, error) {
	if !models.ValidRoomStatus(status) {
		return nil, fmt.Errorf("unknown room status %q", status)
	}
	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}
