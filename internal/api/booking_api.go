package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"locker-rental/internal/data/entity"
	"locker-rental/internal/dto/request"
	"locker-rental/internal/dto/response"
)

// CreateBooking handles POST /bookings.
func (c *Client) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error) {
	var out entity.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyBookings handles GET /bookings/my-bookings?status=&page=&limit=.
func (c *Client) MyBookings(ctx context.Context, req *request.MyBookingsRequest) (*response.BookingListResponse, error) {
	query := url.Values{}
	if req.Status != "" {
		query.Set("status", req.Status)
	}
	if req.Page > 0 {
		query.Set("page", strconv.Itoa(req.Page))
	}
	if req.PerPage > 0 {
		query.Set("limit", strconv.Itoa(req.PerPage))
	}

	var out response.BookingListResponse
	if err := c.do(ctx, http.MethodGet, "/bookings/my-bookings", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBooking handles GET /bookings/:id.
func (c *Client) GetBooking(ctx context.Context, id string) (*entity.Booking, error) {
	var out entity.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBookingStatus handles PATCH /bookings/:id/status.
func (c *Client) UpdateBookingStatus(ctx context.Context, id string, req *request.UpdateBookingStatusRequest) (*entity.Booking, error) {
	var out entity.Booking
	if err := c.do(ctx, http.MethodPatch, "/bookings/"+url.PathEscape(id)+"/status", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelBooking handles DELETE /bookings/:id/cancel.
func (c *Client) CancelBooking(ctx context.Context, id string, req *request.CancelBookingRequest) (*entity.Booking, error) {
	var out entity.Booking
	if err := c.do(ctx, http.MethodDelete, "/bookings/"+url.PathEscape(id)+"/cancel", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckIn handles POST /bookings/:id/checkin.
func (c *Client) CheckIn(ctx context.Context, id string) (*entity.Booking, error) {
	var out entity.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings/"+url.PathEscape(id)+"/checkin", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckOut handles POST /bookings/:id/checkout.
func (c *Client) CheckOut(ctx context.Context, id string) (*entity.Booking, error) {
	var out entity.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings/"+url.PathEscape(id)+"/checkout", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
