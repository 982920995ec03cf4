package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"locker-rental/internal/api"
	"locker-rental/internal/data/entity"
	"locker-rental/internal/state"
	"locker-rental/pkg/utils"

	"go.uber.org/zap"
)

type staticSessions struct{ token string }

func (s *staticSessions) Token() string { return s.token }
func (s *staticSessions) Clear()        { s.token = "" }

func testBookingConfig() *utils.Config {
	return &utils.Config{
		Booking: utils.BookingConfig{MaxRentalHours: 24, BufferMinutes: 15},
	}
}

// bookingBackend serves GET /bookings/{id} and DELETE
// /bookings/{id}/cancel from a single fixture booking.
func bookingBackend(t *testing.T, booking entity.Booking, cancelHit *bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && strings.HasSuffix(r.URL.Path, "/cancel") {
			*cancelHit = true
			cancelled := booking
			cancelled.Status = entity.BookingStatusCancelled
			writeEnvelope(w, cancelled)
			return
		}
		writeEnvelope(w, booking)
	}))
}

func writeEnvelope(w http.ResponseWriter, data any) {
	raw, _ := json.Marshal(data)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  true,
		"message": "Success",
		"data":    json.RawMessage(raw),
	})
}

func newTestBookingService(t *testing.T, baseURL string, now time.Time) (*bookingService, *state.BookingStore) {
	t.Helper()
	store := state.NewBookingStore()
	client := api.NewClient(baseURL, &staticSessions{token: "tok"}, zap.NewNop())
	svc := NewBookingService(client, store, testBookingConfig(), zap.NewNop()).(*bookingService)
	svc.now = func() time.Time { return now }
	return svc, store
}

func TestValidateWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestBookingService(t, "http://unused", now)

	cases := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr string
	}{
		{"valid", now.Add(time.Hour), now.Add(3 * time.Hour), ""},
		{"end before start", now.Add(3 * time.Hour), now.Add(time.Hour), "end must be after start"},
		{"zero duration", now.Add(time.Hour), now.Add(time.Hour), "end must be after start"},
		{"inside buffer", now.Add(5 * time.Minute), now.Add(2 * time.Hour), "15 minutes from now"},
		{"too long", now.Add(time.Hour), now.Add(26 * time.Hour), "24 hour maximum"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.validateWindow(tc.start, tc.end)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("want error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCancelRejectsImminentStart(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	booking := entity.Booking{
		Base:      entity.Base{ID: "bk-1"},
		Status:    entity.BookingStatusConfirmed,
		StartTime: now.Add(30 * time.Minute),
	}
	var cancelHit bool
	srv := bookingBackend(t, booking, &cancelHit)
	defer srv.Close()

	svc, _ := newTestBookingService(t, srv.URL, now)
	_, err := svc.Cancel(context.Background(), "bk-1", "")
	if err == nil || !strings.Contains(err.Error(), "before start") {
		t.Fatalf("want lead-time rejection, got %v", err)
	}
	if cancelHit {
		t.Fatal("cancel endpoint must not be called when rejected locally")
	}
}

func TestCancelRejectsTerminalStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	booking := entity.Booking{
		Base:      entity.Base{ID: "bk-2"},
		Status:    entity.BookingStatusCompleted,
		StartTime: now.Add(48 * time.Hour),
	}
	var cancelHit bool
	srv := bookingBackend(t, booking, &cancelHit)
	defer srv.Close()

	svc, _ := newTestBookingService(t, srv.URL, now)
	_, err := svc.Cancel(context.Background(), "bk-2", "changed plans")
	if err == nil || !strings.Contains(err.Error(), "completed") {
		t.Fatalf("want terminal-status rejection, got %v", err)
	}
	if cancelHit {
		t.Fatal("cancel endpoint must not be called for terminal bookings")
	}
}

func TestCancelEligibleBookingUpdatesStore(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	booking := entity.Booking{
		Base:      entity.Base{ID: "bk-3"},
		Status:    entity.BookingStatusConfirmed,
		StartTime: now.Add(3 * time.Hour),
	}
	var cancelHit bool
	srv := bookingBackend(t, booking, &cancelHit)
	defer srv.Close()

	svc, store := newTestBookingService(t, srv.URL, now)
	store.FetchSucceeded([]entity.Booking{booking})

	cancelled, err := svc.Cancel(context.Background(), "bk-3", "changed plans")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if !cancelHit {
		t.Fatal("cancel endpoint was never reached")
	}
	if cancelled.Status != entity.BookingStatusCancelled {
		t.Fatalf("want cancelled status, got %s", cancelled.Status)
	}

	bookings := store.Bookings().Data
	if len(bookings) != 1 || bookings[0].Status != entity.BookingStatusCancelled {
		t.Fatalf("store did not pick up the cancellation: %+v", bookings)
	}
}
