// internal/wire/wire.go
package wire

import (
	"io"
	"time"

	"locker-rental/internal/adaptor"
	"locker-rental/internal/api"
	"locker-rental/internal/locate"
	"locker-rental/internal/session"
	"locker-rental/internal/usecase"
	"locker-rental/pkg/utils"

	"go.uber.org/zap"
)

// App holds the wired client application.
type App struct {
	Handler  *adaptor.Handler
	Service  *usecase.Service
	Stores   *usecase.Stores
	Sessions *session.Store
	Provider *locate.Provider
}

// Wiring initializes all dependencies. Command output goes to out;
// diagnostics go through the logger.
func Wiring(config *utils.Config, out io.Writer, logger *zap.Logger) *App {
	sessions := session.NewStore(config.App.SessionPath, logger)

	client := api.NewClient(config.API.BaseURL, sessions, logger,
		api.WithTimeout(time.Duration(config.API.TimeoutSeconds)*time.Second))

	// No positioning hardware on this platform: a fixed position at the
	// configured city center, movable per-run through config.
	positioner := locate.NewStaticPositioner(config.Map.DefaultCenterLat, config.Map.DefaultCenterLon)
	provider := locate.NewProvider(positioner, config.App.Debug,
		config.Map.DefaultCenterLat, config.Map.DefaultCenterLon, logger)

	stores := usecase.NewStores()
	service := usecase.NewService(client, sessions, provider, stores, config, logger)
	handler := adaptor.NewHandler(service, out, logger)

	return &App{
		Handler:  handler,
		Service:  service,
		Stores:   stores,
		Sessions: sessions,
		Provider: provider,
	}
}
