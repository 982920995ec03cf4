package response

import (
	"locker-rental/internal/data/entity"
)

type BookingListResponse struct {
	Bookings   []entity.Booking `json:"bookings"`
	Pagination Pagination       `json:"pagination"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}
