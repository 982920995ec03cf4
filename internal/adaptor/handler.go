// Package adaptor renders the command-line screens. Each handler parses
// already-split command arguments, calls its service, and prints the
// result; all domain rules stay in usecase.
package adaptor

import (
	"io"

	"locker-rental/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Business *BusinessHandler
	Booking  *BookingHandler
}

func NewHandler(service *usecase.Service, out io.Writer, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, out, log),
		Business: NewBusinessHandler(service.Business, out, log),
		Booking:  NewBookingHandler(service.Booking, out, log),
	}
}
