package state

import (
	"sync"

	"locker-rental/internal/data/entity"
)

// BookingStore tracks the user's bookings plus the subset currently in
// use (status "active").
type BookingStore struct {
	mu       sync.Mutex
	bookings Async[[]entity.Booking]
	active   []entity.Booking
	create   Async[*entity.Booking]
}

func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

func (s *BookingStore) StartFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = s.bookings.Start()
}

func (s *BookingStore) FetchSucceeded(list []entity.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = s.bookings.Succeed(list)
	active := make([]entity.Booking, 0)
	for _, b := range list {
		if b.IsActive() {
			active = append(active, b)
		}
	}
	s.active = active
}

func (s *BookingStore) FetchFailed(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = s.bookings.Fail(msg)
}

func (s *BookingStore) StartCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.create = s.create.Start()
}

// CreateSucceeded prepends the new booking to the list, and to the
// active list when it is already in use.
func (s *BookingStore) CreateSucceeded(b entity.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.create = s.create.Succeed(&b)
	s.bookings = s.bookings.Succeed(append([]entity.Booking{b}, s.bookings.Data...))
	if b.IsActive() {
		s.active = append([]entity.Booking{b}, s.active...)
	}
}

func (s *BookingStore) CreateFailed(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.create = s.create.Fail(msg)
}

// ApplyUpdate replaces the booking in place (cancel, check-in,
// check-out, any status change) and moves it into or out of the active
// list depending on its new status.
func (s *BookingStore) ApplyUpdate(updated entity.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.bookings.Data
	for i := range list {
		if list[i].ID == updated.ID {
			list[i] = updated
			break
		}
	}

	active := make([]entity.Booking, 0, len(s.active))
	for _, b := range s.active {
		if b.ID != updated.ID {
			active = append(active, b)
		}
	}
	if updated.IsActive() {
		active = append(active, updated)
	}
	s.active = active
}

func (s *BookingStore) Bookings() Async[[]entity.Booking] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings
}

func (s *BookingStore) Active() []entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Booking, len(s.active))
	copy(out, s.active)
	return out
}

func (s *BookingStore) LastCreated() Async[*entity.Booking] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.create
}
