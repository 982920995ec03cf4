package state

import (
	"testing"
	"time"

	"locker-rental/internal/data/entity"
)

func TestAsyncPhases(t *testing.T) {
	var a Async[[]string]

	a = a.Succeed([]string{"x"})
	a = a.Fail("boom")
	if a.Loading {
		t.Fatal("failure must clear loading")
	}
	if a.Err != "boom" {
		t.Fatalf("expected error recorded, got %q", a.Err)
	}
	if len(a.Data) != 1 || a.Data[0] != "x" {
		t.Fatalf("failure must leave prior data untouched, got %v", a.Data)
	}

	a = a.Start()
	if !a.Loading || a.Err != "" {
		t.Fatalf("start must set loading and clear error, got %+v", a)
	}

	a = a.Succeed([]string{"y", "z"})
	if a.Loading || a.Err != "" || len(a.Data) != 2 {
		t.Fatalf("success must replace data and clear flags, got %+v", a)
	}
}

func booking(id string, status entity.BookingStatus) entity.Booking {
	return entity.Booking{
		Base:      entity.Base{ID: id},
		Status:    status,
		StartTime: time.Now().Add(2 * time.Hour),
		EndTime:   time.Now().Add(4 * time.Hour),
	}
}

func TestBookingStoreCreatePrepends(t *testing.T) {
	s := NewBookingStore()
	s.FetchSucceeded([]entity.Booking{
		booking("b1", entity.BookingStatusConfirmed),
		booking("b2", entity.BookingStatusActive),
	})

	if got := len(s.Active()); got != 1 {
		t.Fatalf("expected 1 active booking after fetch, got %d", got)
	}

	s.CreateSucceeded(booking("b3", entity.BookingStatusActive))

	list := s.Bookings().Data
	if list[0].ID != "b3" {
		t.Fatalf("create must prepend, got head %s", list[0].ID)
	}
	if got := len(s.Active()); got != 2 {
		t.Fatalf("active creation should join the active list, got %d", got)
	}

	s.CreateSucceeded(booking("b4", entity.BookingStatusConfirmed))
	if got := len(s.Active()); got != 2 {
		t.Fatalf("confirmed creation must not join the active list, got %d", got)
	}
}

func TestBookingStoreApplyUpdate(t *testing.T) {
	s := NewBookingStore()
	s.FetchSucceeded([]entity.Booking{
		booking("b1", entity.BookingStatusConfirmed),
		booking("b2", entity.BookingStatusActive),
	})

	// Check-in: b1 becomes active.
	b1 := booking("b1", entity.BookingStatusActive)
	s.ApplyUpdate(b1)

	if got := len(s.Active()); got != 2 {
		t.Fatalf("expected 2 active after check-in, got %d", got)
	}
	if s.Bookings().Data[0].Status != entity.BookingStatusActive {
		t.Fatal("update must replace the booking in place")
	}

	// Check-out: b2 leaves the active list.
	s.ApplyUpdate(booking("b2", entity.BookingStatusCompleted))
	active := s.Active()
	if len(active) != 1 || active[0].ID != "b1" {
		t.Fatalf("expected only b1 active, got %v", active)
	}

	// Cancel: replaced in place, not active.
	s.ApplyUpdate(booking("b1", entity.BookingStatusCancelled))
	if len(s.Active()) != 0 {
		t.Fatal("cancelled booking must leave the active list")
	}
	if len(s.Bookings().Data) != 2 {
		t.Fatal("updates must never drop bookings from the list")
	}
}

func TestBusinessStoreIndependentLists(t *testing.T) {
	s := NewBusinessStore()

	s.SearchSucceeded([]entity.Business{{Base: entity.Base{ID: "s1"}}})
	s.NearbyFailed("location unavailable")

	if got := s.Search(); len(got.Data) != 1 || got.Err != "" {
		t.Fatalf("nearby failure must not touch search results, got %+v", got)
	}
	if got := s.Nearby(); got.Err != "location unavailable" {
		t.Fatalf("expected nearby error recorded, got %+v", got)
	}

	// Fallback: no nearby data, display falls back to search.
	if got := s.DisplayResults(); len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("expected search fallback, got %v", got)
	}

	s.NearbySucceeded([]entity.Business{{Base: entity.Base{ID: "n1"}}, {Base: entity.Base{ID: "n2"}}})
	if got := s.DisplayResults(); len(got) != 2 || got[0].ID != "n1" {
		t.Fatalf("expected nearby preferred, got %v", got)
	}
}

func TestAuthStoreSessionCleared(t *testing.T) {
	s := NewAuthStore()
	s.AuthSucceeded(&entity.User{Base: entity.Base{ID: "u1"}})

	s.SessionCleared()
	if got := s.User(); got.Data != nil || got.Err != "" || got.Loading {
		t.Fatalf("expected zeroed auth state, got %+v", got)
	}
}
