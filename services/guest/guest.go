package guest

import (
	"hospitality/database/repository/guest"
	"hospitality/models"

	"github.com/google/uuid"
)

// GuestService manages guest profiles.
type GuestService interface {
	// RegisterGuest creates a guest profile, or returns the existing profile
	// when one with the same name already exists. Front-desk flows re-enter
	// returning guests by name, so registration is idempotent on it.
	RegisterGuest(name, email, phone string, guestType models.GuestType) (*models.Guest, error)
	// GetGuest retrieves a guest by ID.
	GetGuest(id string) (*models.Guest, error)
	// FindGuestByName retrieves a guest by exact display name.
	FindGuestByName(name string) (*models.Guest, error)
	// ListGuests retrieves all guest profiles.
	ListGuests() ([]models.Guest, error)
}

// DefaultGuestService implements GuestService.
type DefaultGuestService struct {
	repo guestRepo.GuestRepository
}

// NewGuestService creates a GuestService.
func NewGuestService(repo guestRepo.GuestRepository) *DefaultGuestService {
	return &DefaultGuestService{repo: repo}
}

// RegisterGuest creates or returns the guest profile with the given name.
func (s *DefaultGuestService) RegisterGuest(name, email, phone string, guestType models.GuestType) (*models.Guest, error) {
	existing, err := s.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if guestType == "" {
		guestType = models.GuestTypeWalkIn
	}
	guest := &models.Guest{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
		Phone: phone,
		Type:  guestType,
	}
	if err := s.repo.Create(guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// GetGuest retrieves a guest by ID.
func (s *DefaultGuestService) GetGuest(id string) (*models.Guest, error) {
	return s.repo.GetByID(id)
}

// FindGuestByName retrieves a guest by exact display name.
func (s *DefaultGuestService) FindGuestByName(name string) (*models.Guest, error) {
	guest, err := s.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, models.ErrGuestNotFound
	}
	return guest, nil
}

// ListGuests retrieves all guest profiles.
func (s *DefaultGuestService) ListGuests() ([]models.Guest, error) {
	return s.repo.GetAll()
}
