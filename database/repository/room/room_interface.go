package roomRepo

import "hospitality/models"

// RoomRepository defines methods for room inventory data access. The catalog
// service is the only writer of the housekeeping status flag.
type RoomRepository interface {
	// Create inserts a new room record.
	Create(room *models.Room) error
	// GetByID retrieves a room by its unique ID.
	GetByID(id string) (*models.Room, error)
	// GetByNumber retrieves a room by its human-facing number.
	GetByNumber(number string) (*models.Room, error)
	// GetAll retrieves the full inventory, ordered by room number.
	GetAll() ([]models.Room, error)
	// GetByStatus retrieves rooms with the given housekeeping status,
	// optionally filtered by room type (empty type means all types).
	GetByStatus(status models.RoomStatus, roomType models.RoomType) ([]models.Room, error)
	// Count returns the number of rooms in the inventory.
	Count() (int64, error)
	// CountByStatus returns the number of rooms with the given status.
	CountByStatus(status models.RoomStatus) (int64, error)
	// UpdateStatus sets the housekeeping status flag.
	UpdateStatus(id string, status models.RoomStatus) error
}
