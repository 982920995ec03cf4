package usecase

import (
	"locker-rental/internal/api"
	"locker-rental/internal/locate"
	"locker-rental/internal/session"
	"locker-rental/internal/state"
	"locker-rental/pkg/utils"

	"go.uber.org/zap"
)

// Service groups the client-side flows behind the CLI screens.
type Service struct {
	Auth     AuthService
	Business BusinessService
	Booking  BookingService
}

type Stores struct {
	Auth     *state.AuthStore
	Business *state.BusinessStore
	Booking  *state.BookingStore
}

func NewStores() *Stores {
	return &Stores{
		Auth:     state.NewAuthStore(),
		Business: state.NewBusinessStore(),
		Booking:  state.NewBookingStore(),
	}
}

func NewService(
	client *api.Client,
	sessions *session.Store,
	provider *locate.Provider,
	stores *Stores,
	config *utils.Config,
	logger *zap.Logger,
) *Service {
	// A 401 anywhere clears the persisted session; the auth container
	// follows so the presentation layer lands on the login flow.
	sessions.Subscribe(stores.Auth.SessionCleared)

	return &Service{
		Auth:     NewAuthService(client, sessions, stores.Auth, logger),
		Business: NewBusinessService(client, provider, stores.Business, config, logger),
		Booking:  NewBookingService(client, stores.Booking, config, logger),
	}
}
