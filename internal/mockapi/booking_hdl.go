package mockapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"locker-rental/internal/data/entity"
	"locker-rental/internal/dto/request"
	"locker-rental/internal/dto/response"
	"locker-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	store          *Store
	maxRentalHours int
	log            *zap.Logger
}

func NewBookingHandler(store *Store, maxRentalHours int, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		store:          store,
		maxRentalHours: maxRentalHours,
		log:            log.With(zap.String("handler", "booking")),
	}
}

// Create handles POST /bookings (protected)
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if req.EndTime.Sub(req.StartTime).Hours() > float64(h.maxRentalHours) {
		utils.ResponseBadRequest(w, "rental duration exceeds the maximum", nil)
		return
	}

	booking, err := h.store.CreateBooking(userID, req.BusinessID, req.StartTime, req.EndTime)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	h.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("user_id", userID),
		zap.String("business_id", booking.BusinessID))

	utils.ResponseCreated(w, "success", booking)
}

// MyBookings handles GET /bookings/my-bookings?status=&page=&limit= (protected)
func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	limit := utils.ParseInt(query.Get("limit"), 10)
	status := query.Get("status")

	offset := utils.CalculateOffset(page, limit)
	bookings, total := h.store.ListBookings(userID, status, offset, limit)

	utils.ResponseSuccess(w, "success", response.BookingListResponse{
		Bookings: bookings,
		Pagination: response.Pagination{
			Page:       page,
			PerPage:    limit,
			Total:      total,
			TotalPages: utils.CalculateTotalPages(total, limit),
		},
	})
}

// GetByID handles GET /bookings/{id} (protected)
func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, found := h.store.GetBooking(chi.URLParam(r, "id"))
	if !found || booking.UserID != userID {
		utils.ResponseNotFound(w, "booking not found")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// UpdateStatus handles PATCH /bookings/{id}/status (protected)
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.store.UpdateBookingStatus(chi.URLParam(r, "id"), userID, entity.BookingStatus(req.Status))
	if err != nil {
		h.handleServiceError(w, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// Cancel handles DELETE /bookings/{id}/cancel (protected)
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CancelBookingRequest
	if r.Body != nil {
		// cancel reason is optional; an empty body is fine
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	booking, err := h.store.CancelBooking(chi.URLParam(r, "id"), userID, req.Reason)
	if err != nil {
		h.handleServiceError(w, err, "cancel booking")
		return
	}

	h.log.Info("Booking cancelled", zap.String("booking_id", booking.ID), zap.String("user_id", userID))
	utils.ResponseSuccess(w, "success", booking)
}

// CheckIn handles POST /bookings/{id}/checkin (protected)
func (h *BookingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, err := h.store.CheckIn(chi.URLParam(r, "id"), userID)
	if err != nil {
		h.handleServiceError(w, err, "check in")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CheckOut handles POST /bookings/{id}/checkout (protected)
func (h *BookingHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, err := h.store.CheckOut(chi.URLParam(r, "id"), userID)
	if err != nil {
		h.handleServiceError(w, err, "check out")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "no lockers"):
		h.log.Warn(operation+" failed - sold out", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "cannot"):
		h.log.Warn(operation+" failed - invalid state", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
