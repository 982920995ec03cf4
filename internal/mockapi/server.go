package mockapi

import (
	"net/http"

	"locker-rental/pkg/middleware"
	"locker-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Server struct {
	Store  *Store
	router *chi.Mux
}

// NewServer wires the in-memory store behind the same routes and
// response envelope the production API exposes.
func NewServer(config *utils.Config, logger *zap.Logger) *Server {
	store := NewStore()

	authHandler := NewAuthHandler(store, logger)
	businessHandler := NewBusinessHandler(store, config.Search.RadiusKm, logger)
	bookingHandler := NewBookingHandler(store, config.Booking.MaxRentalHours, logger)
	userHandler := NewUserHandler(store, logger)

	r := chi.NewRouter()
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Public routes
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Get("/businesses/search", businessHandler.Search)
	r.Get("/businesses/nearby", businessHandler.Nearby)
	r.Get("/businesses/{id}", businessHandler.GetByID)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(store, logger))

		r.Get("/auth/profile", authHandler.GetProfile)
		r.Patch("/users/profile", userHandler.UpdateProfile)

		r.Post("/bookings", bookingHandler.Create)
		r.Get("/bookings/my-bookings", bookingHandler.MyBookings)
		r.Get("/bookings/{id}", bookingHandler.GetByID)
		r.Patch("/bookings/{id}/status", bookingHandler.UpdateStatus)
		r.Delete("/bookings/{id}/cancel", bookingHandler.Cancel)
		r.Post("/bookings/{id}/checkin", bookingHandler.CheckIn)
		r.Post("/bookings/{id}/checkout", bookingHandler.CheckOut)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return &Server{Store: store, router: r}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
