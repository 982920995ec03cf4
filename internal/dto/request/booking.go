package request

import (
	"time"
)

type CreateBookingRequest struct {
	BusinessID string    `json:"businessId" validate:"required"`
	StartTime  time.Time `json:"startTime" validate:"required"`
	EndTime    time.Time `json:"endTime" validate:"required"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed active completed cancelled expired"`
}

type MyBookingsRequest struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed active completed cancelled expired"`
	PaginatedRequest
}
