package usecase

import (
	"context"
	"fmt"
	"time"

	"locker-rental/internal/api"
	"locker-rental/internal/data/entity"
	"locker-rental/internal/dto/request"
	"locker-rental/internal/state"
	"locker-rental/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error)
	List(ctx context.Context, req *request.MyBookingsRequest) ([]entity.Booking, error)
	Detail(ctx context.Context, id string) (*entity.Booking, error)
	Cancel(ctx context.Context, id, reason string) (*entity.Booking, error)
	CheckIn(ctx context.Context, id string) (*entity.Booking, error)
	CheckOut(ctx context.Context, id string) (*entity.Booking, error)
	Active() []entity.Booking
}

type bookingService struct {
	client *api.Client
	store  *state.BookingStore
	config *utils.Config
	log    *zap.Logger

	now func() time.Time
}

func NewBookingService(client *api.Client, store *state.BookingStore, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		client: client,
		store:  store,
		config: config,
		log:    log.With(zap.String("service", "booking")),
		now:    time.Now,
	}
}

// validateWindow enforces the client-side input rules before anything
// reaches the server: valid range, configured booking buffer before
// start, configured maximum duration.
func (s *bookingService) validateWindow(start, end time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("invalid time range: end must be after start")
	}

	buffer := time.Duration(s.config.Booking.BufferMinutes) * time.Minute
	if start.Before(s.now().Add(buffer)) {
		return fmt.Errorf("start time must be at least %d minutes from now", s.config.Booking.BufferMinutes)
	}

	maxDuration := time.Duration(s.config.Booking.MaxRentalHours) * time.Hour
	if end.Sub(start) > maxDuration {
		return fmt.Errorf("duration exceeds the %d hour maximum", s.config.Booking.MaxRentalHours)
	}
	return nil
}

func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if err := s.validateWindow(req.StartTime, req.EndTime); err != nil {
		s.log.Warn("Booking window rejected", zap.Error(err))
		return nil, err
	}

	s.store.StartCreate()
	booking, err := s.client.CreateBooking(ctx, req)
	if err != nil {
		s.store.CreateFailed(err.Error())
		return nil, err
	}

	s.store.CreateSucceeded(*booking)
	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("business_id", booking.BusinessID))
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, req *request.MyBookingsRequest) ([]entity.Booking, error) {
	s.store.StartFetch()
	resp, err := s.client.MyBookings(ctx, req)
	if err != nil {
		s.store.FetchFailed(err.Error())
		return nil, err
	}
	s.store.FetchSucceeded(resp.Bookings)
	return resp.Bookings, nil
}

func (s *bookingService) Detail(ctx context.Context, id string) (*entity.Booking, error) {
	if id == "" {
		return nil, fmt.Errorf("validation failed: booking id is required")
	}
	return s.client.GetBooking(ctx, id)
}

// Cancel applies the client-side eligibility rule before calling the
// server: terminal bookings and bookings starting within the hour are
// rejected locally.
func (s *bookingService) Cancel(ctx context.Context, id, reason string) (*entity.Booking, error) {
	booking, err := s.client.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.CanCancel(s.now()) {
		switch booking.Status {
		case entity.BookingStatusCompleted, entity.BookingStatusCancelled:
			return nil, fmt.Errorf("cannot cancel a %s booking", booking.Status)
		default:
			return nil, fmt.Errorf("cannot cancel less than %s before start", entity.CancelThreshold)
		}
	}

	cancelled, err := s.client.CancelBooking(ctx, id, &request.CancelBookingRequest{Reason: reason})
	if err != nil {
		return nil, err
	}

	s.store.ApplyUpdate(*cancelled)
	s.log.Info("Booking cancelled", zap.String("booking_id", id))
	return cancelled, nil
}

func (s *bookingService) CheckIn(ctx context.Context, id string) (*entity.Booking, error) {
	booking, err := s.client.CheckIn(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store.ApplyUpdate(*booking)
	s.log.Info("Checked in", zap.String("booking_id", id))
	return booking, nil
}

func (s *bookingService) CheckOut(ctx context.Context, id string) (*entity.Booking, error) {
	booking, err := s.client.CheckOut(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store.ApplyUpdate(*booking)
	s.log.Info("Checked out", zap.String("booking_id", id))
	return booking, nil
}

func (s *bookingService) Active() []entity.Booking {
	return s.store.Active()
}
