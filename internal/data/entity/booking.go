package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

// CancelThreshold is the minimum lead time before start for a
// client-side cancellation to be allowed.
const CancelThreshold = time.Hour

type Booking struct {
	Base
	UserID             string        `json:"userId"`
	BusinessID         string        `json:"businessId"`
	BusinessName       string        `json:"businessName,omitempty"`
	LockerNumber       int           `json:"lockerNumber"`
	StartTime          time.Time     `json:"startTime"`
	EndTime            time.Time     `json:"endTime"`
	DurationHours      float64       `json:"durationHours"`
	TotalAmount        float64       `json:"totalAmount"`
	Status             BookingStatus `json:"status"`
	AccessCode         *string       `json:"accessCode,omitempty"`
	CancellationReason *string       `json:"cancellationReason,omitempty"`
}

// IsActive reports whether the booking is currently in use, as opposed
// to merely confirmed for a future window.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusActive
}

// CanCancel implements the client-side cancellation eligibility rule:
// terminal bookings are never cancellable, and everything else is
// cancellable only while the start time is more than CancelThreshold
// away. Status transitions themselves stay server-authoritative.
func (b *Booking) CanCancel(now time.Time) bool {
	switch b.Status {
	case BookingStatusCompleted, BookingStatusCancelled:
		return false
	}
	return b.StartTime.After(now.Add(CancelThreshold))
}
