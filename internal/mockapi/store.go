// Package mockapi is the bundled development server: an in-memory
// implementation of the locker-rental API surface the client consumes.
// It exists so the CLI and the client test suite run with zero
// infrastructure; the production service stays outside this repository.
package mockapi

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"locker-rental/internal/data/entity"
	"locker-rental/internal/geo"
	"locker-rental/pkg/utils"
)

const sessionTTL = 24 * time.Hour

type userRecord struct {
	entity.User
	PasswordHash string
}

type sessionRecord struct {
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// Store holds all server-side state in memory, guarded by one mutex.
type Store struct {
	mu         sync.Mutex
	users      map[string]*userRecord
	byEmail    map[string]string
	sessions   map[string]*sessionRecord
	businesses []entity.Business
	bookings   map[string]*entity.Booking
	lockerSeq  map[string]int
}

func NewStore() *Store {
	s := &Store{
		users:     make(map[string]*userRecord),
		byEmail:   make(map[string]string),
		sessions:  make(map[string]*sessionRecord),
		bookings:  make(map[string]*entity.Booking),
		lockerSeq: make(map[string]int),
	}
	s.businesses = seedBusinesses()
	return s
}

// ==================== USERS & SESSIONS ====================

func (s *Store) CreateUser(name, email, password string, phone *string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := s.byEmail[key]; exists {
		return nil, fmt.Errorf("email already registered")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	rec := &userRecord{
		User: entity.User{
			Base:     entity.Base{ID: utils.GenerateUUIDString(), CreatedAt: now, UpdatedAt: now},
			Name:     name,
			Email:    email,
			Phone:    phone,
			Role:     entity.RoleCustomer,
			IsActive: true,
		},
		PasswordHash: hash,
	}
	s.users[rec.ID] = rec
	s.byEmail[key] = rec.ID

	u := rec.User
	return &u, nil
}

func (s *Store) Authenticate(email, password string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, fmt.Errorf("invalid credentials")
	}
	rec := s.users[id]
	if !utils.CheckPasswordHash(password, rec.PasswordHash) {
		return nil, fmt.Errorf("invalid credentials")
	}
	if !rec.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}

	u := rec.User
	return &u, nil
}

func (s *Store) CreateSession(userID string) (token string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token = utils.GenerateSessionToken()
	expiresAt = time.Now().Add(sessionTTL)
	role := string(entity.RoleCustomer)
	if rec, ok := s.users[userID]; ok {
		role = string(rec.Role)
	}
	s.sessions[token] = &sessionRecord{UserID: userID, Role: role, ExpiresAt: expiresAt}
	return token, expiresAt
}

// ValidateToken implements middleware.SessionValidator.
func (s *Store) ValidateToken(token string) (userID, role string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, found := s.sessions[token]
	if !found || time.Now().After(sess.ExpiresAt) {
		return "", "", false
	}
	return sess.UserID, sess.Role, true
}

func (s *Store) GetUser(id string) (*entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[id]
	if !ok {
		return nil, false
	}
	u := rec.User
	return &u, true
}

func (s *Store) UpdateUser(id string, name string, phone *string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	if name != "" {
		rec.Name = name
	}
	if phone != nil {
		rec.Phone = phone
	}
	rec.UpdatedAt = time.Now()

	u := rec.User
	return &u, nil
}

// ==================== BUSINESSES ====================

func (s *Store) SearchBusinesses(zipCode, name string) []entity.Business {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Business, 0)
	for _, b := range s.businesses {
		if zipCode != "" && b.Address.ZipCode != zipCode {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(name)) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// NearbyBusinesses filters by haversine radius and returns results
// sorted by ascending distance with the distance field populated.
func (s *Store) NearbyBusinesses(lat, lon, radiusKm float64) []entity.Business {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Business, 0)
	for _, b := range s.businesses {
		d := geo.Haversine(lat, lon, b.Location.Latitude(), b.Location.Longitude())
		if d > radiusKm {
			continue
		}
		dist := d
		b.DistanceKm = &dist
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return *out[i].DistanceKm < *out[j].DistanceKm
	})
	return out
}

func (s *Store) GetBusiness(id string) (*entity.Business, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getBusinessLocked(id)
}

func (s *Store) getBusinessLocked(id string) (*entity.Business, bool) {
	for i := range s.businesses {
		if s.businesses[i].ID == id {
			b := s.businesses[i]
			return &b, true
		}
	}
	return nil, false
}

func (s *Store) adjustAvailabilityLocked(businessID string, delta int) {
	for i := range s.businesses {
		if s.businesses[i].ID == businessID {
			next := s.businesses[i].AvailableLockers + delta
			if next < 0 {
				next = 0
			}
			if next > s.businesses[i].TotalLockers {
				next = s.businesses[i].TotalLockers
			}
			s.businesses[i].AvailableLockers = next
			return
		}
	}
}

// ==================== BOOKINGS ====================

func (s *Store) CreateBooking(userID, businessID string, start, end time.Time) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	biz, ok := s.getBusinessLocked(businessID)
	if !ok {
		return nil, fmt.Errorf("business not found")
	}
	if !end.After(start) {
		return nil, fmt.Errorf("invalid time range: end must be after start")
	}
	if biz.AvailableLockers <= 0 {
		return nil, fmt.Errorf("no lockers available")
	}

	s.lockerSeq[businessID]++
	lockerNumber := (s.lockerSeq[businessID]-1)%biz.TotalLockers + 1

	hours := end.Sub(start).Hours()
	now := time.Now()
	b := &entity.Booking{
		Base:          entity.Base{ID: utils.GenerateUUIDString(), CreatedAt: now, UpdatedAt: now},
		UserID:        userID,
		BusinessID:    businessID,
		BusinessName:  biz.Name,
		LockerNumber:  lockerNumber,
		StartTime:     start,
		EndTime:       end,
		DurationHours: hours,
		TotalAmount:   hours * biz.PricePerHour,
		Status:        entity.BookingStatusConfirmed,
	}
	s.bookings[b.ID] = b
	s.adjustAvailabilityLocked(businessID, -1)

	cp := *b
	return &cp, nil
}

func (s *Store) ListBookings(userID, status string, offset, limit int) ([]entity.Booking, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]entity.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID != userID {
			continue
		}
		if status != "" && string(b.Status) != status {
			continue
		}
		all = append(all, *b)
	}
	// newest first
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := int64(len(all))
	if offset >= len(all) {
		return []entity.Booking{}, total
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total
}

func (s *Store) GetBooking(id string) (*entity.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, false
	}
	cp := *b
	return &cp, true
}

func (s *Store) UpdateBookingStatus(id, userID string, status entity.BookingStatus) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok || b.UserID != userID {
		return nil, fmt.Errorf("booking not found")
	}
	b.Status = status
	b.UpdatedAt = time.Now()

	cp := *b
	return &cp, nil
}

func (s *Store) CancelBooking(id, userID, reason string) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok || b.UserID != userID {
		return nil, fmt.Errorf("booking not found")
	}
	switch b.Status {
	case entity.BookingStatusCompleted, entity.BookingStatusCancelled:
		return nil, fmt.Errorf("cannot cancel a %s booking", b.Status)
	}

	b.Status = entity.BookingStatusCancelled
	if reason != "" {
		b.CancellationReason = &reason
	}
	b.UpdatedAt = time.Now()
	s.adjustAvailabilityLocked(b.BusinessID, 1)

	cp := *b
	return &cp, nil
}

func (s *Store) CheckIn(id, userID string) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok || b.UserID != userID {
		return nil, fmt.Errorf("booking not found")
	}
	if b.Status != entity.BookingStatusConfirmed {
		return nil, fmt.Errorf("cannot check in a %s booking", b.Status)
	}

	code := utils.GenerateAccessCode(6)
	b.Status = entity.BookingStatusActive
	b.AccessCode = &code
	b.UpdatedAt = time.Now()

	cp := *b
	return &cp, nil
}

func (s *Store) CheckOut(id, userID string) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok || b.UserID != userID {
		return nil, fmt.Errorf("booking not found")
	}
	if b.Status != entity.BookingStatusActive {
		return nil, fmt.Errorf("cannot check out a %s booking", b.Status)
	}

	b.Status = entity.BookingStatusCompleted
	b.AccessCode = nil
	b.UpdatedAt = time.Now()
	s.adjustAvailabilityLocked(b.BusinessID, 1)

	cp := *b
	return &cp, nil
}
