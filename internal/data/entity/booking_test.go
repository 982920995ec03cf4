package entity

import (
	"testing"
	"time"
)

func TestCanCancelTiming(t *testing.T) {
	now := time.Now()

	soon := Booking{Status: BookingStatusConfirmed, StartTime: now.Add(30 * time.Minute)}
	if soon.CanCancel(now) {
		t.Fatal("confirmed booking starting in 30m must not be cancellable")
	}

	later := Booking{Status: BookingStatusConfirmed, StartTime: now.Add(2 * time.Hour)}
	if !later.CanCancel(now) {
		t.Fatal("confirmed booking starting in 2h must be cancellable")
	}

	// Exactly at the threshold is still too late.
	edge := Booking{Status: BookingStatusConfirmed, StartTime: now.Add(CancelThreshold)}
	if edge.CanCancel(now) {
		t.Fatal("booking starting exactly at the threshold must not be cancellable")
	}
}

func TestCanCancelTerminalStatuses(t *testing.T) {
	now := time.Now()
	farFuture := now.Add(48 * time.Hour)

	for _, status := range []BookingStatus{BookingStatusCompleted, BookingStatusCancelled} {
		b := Booking{Status: status, StartTime: farFuture}
		if b.CanCancel(now) {
			t.Fatalf("%s booking must never be cancellable", status)
		}
	}

	for _, status := range []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusActive, BookingStatusExpired} {
		b := Booking{Status: status, StartTime: farFuture}
		if !b.CanCancel(now) {
			t.Fatalf("%s booking starting far in the future should be cancellable", status)
		}
	}
}

func TestGeoPointAxisOrder(t *testing.T) {
	p := GeoPoint{Type: "Point", Coordinates: []float64{-84.3825, 33.7718}}
	if p.Latitude() != 33.7718 {
		t.Fatalf("latitude must come from index 1, got %f", p.Latitude())
	}
	if p.Longitude() != -84.3825 {
		t.Fatalf("longitude must come from index 0, got %f", p.Longitude())
	}

	var empty GeoPoint
	if empty.Latitude() != 0 || empty.Longitude() != 0 {
		t.Fatal("malformed point should read as origin, not panic")
	}
}
