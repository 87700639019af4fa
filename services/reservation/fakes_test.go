package reservation

import (
	"context"
	"sync"

	"hospitality/models"
)

// fakeStore backs the fake repositories with one mutex, so the booking fake
// gets the same all-or-nothing behavior the Mongo transaction provides.
type fakeStore struct {
	mu           sync.Mutex
	rooms        map[string]*models.Room
	reservations map[string]*models.Reservation
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:        make(map[string]*models.Room),
		reservations: make(map[string]*models.Reservation),
	}
}

type fakeRoomRepo struct{ store *fakeStore }

func (r *fakeRoomRepo) Create(room *models.Room) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.rooms[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) GetByID(id string) (*models.Room, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	room, ok := r.store.rooms[id]
	if !ok {
		return nil, models.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (r *fakeRoomRepo) GetByNumber(number string) (*models.Room, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, room := range r.store.rooms {
		if room.Number == number {
			copied := *room
			return &copied, nil
		}
	}
	return nil, models.ErrRoomNotFound
}

func (r *fakeRoomRepo) GetAll() ([]models.Room, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Room
	for _, room := range r.store.rooms {
		out = append(out, *room)
	}
	return out, nil
}

func (r *fakeRoomRepo) GetByStatus(status models.RoomStatus, roomType models.RoomType) ([]models.Room, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Room
	for _, room := range r.store.rooms {
		if room.Status != status {
			continue
		}
		if roomType != "" && room.Type != roomType {
			continue
		}
		out = append(out, *room)
	}
	return out, nil
}

func (r *fakeRoomRepo) Count() (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.rooms)), nil
}

func (r *fakeRoomRepo) CountByStatus(status models.RoomStatus) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, room := range r.store.rooms {
		if room.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeRoomRepo) UpdateStatus(id string, status models.RoomStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	room, ok := r.store.rooms[id]
	if !ok {
		return models.ErrRoomNotFound
	}
	room.Status = status
	return nil
}

type fakeGuestRepo struct {
	mu     sync.Mutex
	guests map[string]*models.Guest
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{guests: make(map[string]*models.Guest)}
}

func (r *fakeGuestRepo) Create(guest *models.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guests[guest.ID] = guest
	return nil
}

func (r *fakeGuestRepo) GetByID(id string) (*models.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.guests[id]
	if !ok {
		return nil, models.ErrGuestNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGuestRepo) GetByName(name string) (*models.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.guests {
		if g.Name == name {
			copied := *g
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeGuestRepo) GetByUserID(userID string) (*models.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.guests {
		if g.UserID == userID {
			copied := *g
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeGuestRepo) GetAll() ([]models.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Guest
	for _, g := range r.guests {
		out = append(out, *g)
	}
	return out, nil
}

// fakeReservationRepo mirrors the transactional repository: the overlap check
// and the insert happen under one lock.
type fakeReservationRepo struct{ store *fakeStore }

func (r *fakeReservationRepo) CreateReservation(_ context.Context, res *models.Reservation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	room, ok := r.store.rooms[res.RoomID]
	if !ok {
		return models.ErrRoomNotFound
	}
	for _, stay := range room.ActiveStays {
		if models.RangesOverlap(stay.CheckIn, stay.CheckOut, res.CheckIn, res.CheckOut) {
			return models.ErrRoomUnavailable
		}
	}
	room.ActiveStays = append(room.ActiveStays, models.StayRef{
		ReservationID: res.ID,
		CheckIn:       res.CheckIn,
		CheckOut:      res.CheckOut,
	})
	copied := *res
	r.store.reservations[res.ID] = &copied
	return nil
}

func (r *fakeReservationRepo) UpdateStatus(_ context.Context, id string, allowedFrom []models.ReservationStatus, to models.ReservationStatus, releaseStay bool) (*models.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	res, ok := r.store.reservations[id]
	if !ok {
		return nil, models.ErrReservationNotFound
	}
	allowed := false
	for _, from := range allowedFrom {
		if res.Status == from {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, models.ErrInvalidTransition
	}
	res.Status = to

	if releaseStay {
		if room, ok := r.store.rooms[res.RoomID]; ok {
			kept := room.ActiveStays[:0]
			for _, stay := range room.ActiveStays {
				if stay.ReservationID != id {
					kept = append(kept, stay)
				}
			}
			room.ActiveStays = kept
		}
	}

	copied := *res
	return &copied, nil
}

func (r *fakeReservationRepo) GetByID(id string) (*models.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, models.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *fakeReservationRepo) GetAll() ([]models.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Reservation
	for _, res := range r.store.reservations {
		out = append(out, *res)
	}
	return out, nil
}

func (r *fakeReservationRepo) GetActiveByRoomID(roomID string) ([]models.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Reservation
	for _, res := range r.store.reservations {
		if res.RoomID == roomID && res.Status.IsActive() {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) GetCheckouts(day string) ([]models.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Reservation
	for _, res := range r.store.reservations {
		if res.CheckOut == day && res.Status == models.ReservationCheckedIn {
			out = append(out, *res)
		}
	}
	return out, nil
}
