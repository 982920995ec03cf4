package mockapi_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"locker-rental/internal/api"
	"locker-rental/internal/data/entity"
	"locker-rental/internal/dto/request"
	"locker-rental/internal/mockapi"
	"locker-rental/pkg/utils"

	"go.uber.org/zap"
)

type memSessions struct {
	token string
}

func (m *memSessions) Token() string { return m.token }
func (m *memSessions) Clear()        { m.token = "" }

func newTestClient(t *testing.T) (*api.Client, *memSessions) {
	t.Helper()

	config := &utils.Config{
		Search:  utils.SearchConfig{RadiusKm: 10},
		Booking: utils.BookingConfig{MaxRentalHours: 24},
	}
	srv := httptest.NewServer(mockapi.NewServer(config, zap.NewNop()))
	t.Cleanup(srv.Close)

	sessions := &memSessions{}
	return api.NewClient(srv.URL, sessions, zap.NewNop()), sessions
}

func register(t *testing.T, c *api.Client, sessions *memSessions) entity.User {
	t.Helper()
	resp, err := c.Register(context.Background(), &request.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	sessions.token = resp.Token
	return resp.User
}

func TestSearchByZipBoundingBox(t *testing.T) {
	c, _ := newTestClient(t)

	results, err := c.SearchBusinesses(context.Background(), &request.SearchBusinessRequest{ZipCode: "30308"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected results for zip 30308")
	}

	first := results[0]
	lat := first.Location.Latitude()
	lon := first.Location.Longitude()
	if lon <= -85 || lon >= -84 || lat <= 33 || lat >= 34 {
		t.Fatalf("first result outside Atlanta bounding box: lat=%f lon=%f", lat, lon)
	}
	if first.AvailableLockers > first.TotalLockers {
		t.Fatalf("availability exceeds capacity: %d > %d", first.AvailableLockers, first.TotalLockers)
	}
}

func TestNearbySortedAscendingWithDistance(t *testing.T) {
	c, _ := newTestClient(t)

	// Midtown: several seeded businesses within 10 km.
	results, err := c.NearbyBusinesses(context.Background(), &request.NearbyBusinessRequest{
		Latitude:  33.7718,
		Longitude: -84.3825,
		RadiusKm:  10,
	})
	if err != nil {
		t.Fatalf("nearby: %v", err)
	}
	if len(results) < 2 {
		t.Fatalf("expected multiple nearby results, got %d", len(results))
	}

	for i, b := range results {
		if b.DistanceKm == nil {
			t.Fatalf("nearby result %d missing distance", i)
		}
		if *b.DistanceKm > 10 {
			t.Fatalf("result %d outside radius: %f", i, *b.DistanceKm)
		}
		if i > 0 && *results[i-1].DistanceKm > *b.DistanceKm {
			t.Fatalf("results not sorted ascending at %d", i)
		}
	}
}

func TestSearchResultsCarryNoDistance(t *testing.T) {
	c, _ := newTestClient(t)

	results, err := c.SearchBusinesses(context.Background(), &request.SearchBusinessRequest{ZipCode: "30308"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for _, b := range results {
		if b.DistanceKm != nil {
			t.Fatal("only the nearby path populates distance")
		}
	}
}

func TestBookingLifecycle(t *testing.T) {
	c, sessions := newTestClient(t)
	register(t, c, sessions)

	businesses, err := c.SearchBusinesses(context.Background(), &request.SearchBusinessRequest{ZipCode: "30308"})
	if err != nil || len(businesses) == 0 {
		t.Fatalf("search: %v (%d results)", err, len(businesses))
	}
	target := businesses[0]

	start := time.Now().Add(2 * time.Hour).Truncate(time.Minute)
	booking, err := c.CreateBooking(context.Background(), &request.CreateBookingRequest{
		BusinessID: target.ID,
		StartTime:  start,
		EndTime:    start.Add(3 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if booking.Status != entity.BookingStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", booking.Status)
	}
	if booking.TotalAmount != 3*target.PricePerHour {
		t.Fatalf("expected amount %f, got %f", 3*target.PricePerHour, booking.TotalAmount)
	}

	// Availability drops by one.
	after, err := c.GetBusiness(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("get business: %v", err)
	}
	if after.AvailableLockers != target.AvailableLockers-1 {
		t.Fatalf("expected availability %d, got %d", target.AvailableLockers-1, after.AvailableLockers)
	}

	// Check-in issues an access code.
	active, err := c.CheckIn(context.Background(), booking.ID)
	if err != nil {
		t.Fatalf("checkin: %v", err)
	}
	if active.Status != entity.BookingStatusActive || active.AccessCode == nil {
		t.Fatalf("expected active booking with access code, got %+v", active)
	}

	// Listing filters by status.
	list, err := c.MyBookings(context.Background(), &request.MyBookingsRequest{Status: "active"})
	if err != nil {
		t.Fatalf("my bookings: %v", err)
	}
	if len(list.Bookings) != 1 || list.Bookings[0].ID != booking.ID {
		t.Fatalf("expected the active booking, got %+v", list.Bookings)
	}

	// Check-out completes and releases the locker.
	done, err := c.CheckOut(context.Background(), booking.ID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if done.Status != entity.BookingStatusCompleted {
		t.Fatalf("expected completed, got %s", done.Status)
	}

	released, _ := c.GetBusiness(context.Background(), target.ID)
	if released.AvailableLockers != target.AvailableLockers {
		t.Fatalf("locker not released: %d vs %d", released.AvailableLockers, target.AvailableLockers)
	}

	// Completed bookings cannot be cancelled.
	if _, err := c.CancelBooking(context.Background(), booking.ID, &request.CancelBookingRequest{}); !api.IsKind(err, api.ErrValidation) {
		t.Fatalf("expected validation rejection, got %v", err)
	}
}

func TestCancelRecordsReason(t *testing.T) {
	c, sessions := newTestClient(t)
	register(t, c, sessions)

	businesses, _ := c.SearchBusinesses(context.Background(), &request.SearchBusinessRequest{ZipCode: "30303"})
	if len(businesses) == 0 {
		t.Fatal("no businesses in 30303")
	}

	start := time.Now().Add(3 * time.Hour)
	booking, err := c.CreateBooking(context.Background(), &request.CreateBookingRequest{
		BusinessID: businesses[0].ID,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cancelled, err := c.CancelBooking(context.Background(), booking.ID, &request.CancelBookingRequest{Reason: "plans changed"})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != entity.BookingStatusCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status)
	}
	if cancelled.CancellationReason == nil || *cancelled.CancellationReason != "plans changed" {
		t.Fatalf("reason not recorded: %+v", cancelled.CancellationReason)
	}
}

func TestProtectedRoutesRejectStaleToken(t *testing.T) {
	c, sessions := newTestClient(t)
	sessions.token = "not-a-real-token"

	_, err := c.GetProfile(context.Background())
	if !api.IsKind(err, api.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if sessions.token != "" {
		t.Fatal("client must clear the stale session after a 401")
	}
}
