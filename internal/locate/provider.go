// Package locate wraps the device geolocation source behind a small
// provider API: permission request, one-shot position with a bounded
// timeout, and a cancellable watch stream. The physical positioning
// hardware stays outside this repository and is consumed through the
// Positioner interface.
package locate

import (
	"context"
	"sync"
	"time"

	"locker-rental/internal/data/entity"
	"locker-rental/internal/geo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Positioner is the device geolocation source.
type Positioner interface {
	// RequestPermission prompts for location access. Platforms where
	// permission is manifest-granted return true without prompting.
	RequestPermission(ctx context.Context) (bool, error)
	// CurrentPosition blocks until a fix or ctx expires.
	CurrentPosition(ctx context.Context) (entity.Location, error)
}

const (
	// Watch updates are suppressed below this movement threshold.
	watchMinDistanceKm = 0.010 // 10 meters
	watchInterval      = 5 * time.Second
	positionTimeout    = 15 * time.Second
)

type Provider struct {
	positioner Positioner
	debug      bool
	fallback   entity.Location
	log        *zap.Logger

	watchEvery time.Duration

	mu      sync.Mutex
	watches map[string]context.CancelFunc
}

// NewProvider wraps a device positioner. In debug mode positioning
// failures resolve to the fallback city center instead of erroring, so
// the rest of the app proceeds deterministically without hardware.
func NewProvider(p Positioner, debug bool, fallbackLat, fallbackLon float64, log *zap.Logger) *Provider {
	return &Provider{
		positioner: p,
		debug:      debug,
		fallback: entity.Location{
			Latitude:  fallbackLat,
			Longitude: fallbackLon,
		},
		log:        log.With(zap.String("component", "locate")),
		watchEvery: watchInterval,
		watches:    make(map[string]context.CancelFunc),
	}
}

// RequestPermission asks the device for location access.
func (p *Provider) RequestPermission(ctx context.Context) (bool, error) {
	granted, err := p.positioner.RequestPermission(ctx)
	if err != nil {
		return false, &LocationError{Code: ErrPermissionDenied, Err: err}
	}
	return granted, nil
}

// GetCurrentLocation resolves the device position with a bounded
// timeout. Debug builds fall back to the configured city center on any
// failure; production propagates the classified error.
func (p *Provider) GetCurrentLocation(ctx context.Context) (*entity.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, positionTimeout)
	defer cancel()

	loc, err := p.positioner.CurrentPosition(ctx)
	if err != nil {
		if p.debug {
			p.log.Debug("Position lookup failed, using fallback center", zap.Error(err))
			fb := p.fallback
			fb.Timestamp = time.Now()
			return &fb, nil
		}
		return nil, classify(ctx, err)
	}
	if loc.Timestamp.IsZero() {
		loc.Timestamp = time.Now()
	}
	return &loc, nil
}

// GetDebugLocation returns the fixed coordinate for a supported ZIP
// code, bypassing the positioner entirely. Only honored in debug mode.
func (p *Provider) GetDebugLocation(zip string) (*entity.Location, bool) {
	if !p.debug {
		return nil, false
	}
	lat, lon, ok := geo.DebugZipCoordinate(zip)
	if !ok {
		return nil, false
	}
	return &entity.Location{Latitude: lat, Longitude: lon, Timestamp: time.Now()}, true
}

// WatchLocation polls the positioner and delivers updates that moved at
// least the minimum threshold since the last delivery. The returned
// handle cancels the watch via ClearWatch.
func (p *Provider) WatchLocation(ctx context.Context, onUpdate func(entity.Location), onError func(error)) string {
	watchCtx, cancel := context.WithCancel(ctx)
	handle := uuid.New().String()

	p.mu.Lock()
	p.watches[handle] = cancel
	p.mu.Unlock()

	go p.watchLoop(watchCtx, handle, onUpdate, onError)
	return handle
}

// ClearWatch stops the watch identified by handle. Unknown handles are
// ignored.
func (p *Provider) ClearWatch(handle string) {
	p.mu.Lock()
	cancel, ok := p.watches[handle]
	delete(p.watches, handle)
	p.mu.Unlock()
	if ok {
		cancel()
	}
}

func (p *Provider) watchLoop(ctx context.Context, handle string, onUpdate func(entity.Location), onError func(error)) {
	defer p.ClearWatch(handle)

	ticker := time.NewTicker(p.watchEvery)
	defer ticker.Stop()

	var last *entity.Location
	poll := func() {
		loc, err := p.positioner.CurrentPosition(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if onError != nil {
				onError(classify(ctx, err))
			}
			return
		}
		if loc.Timestamp.IsZero() {
			loc.Timestamp = time.Now()
		}
		if last != nil {
			moved := geo.Haversine(last.Latitude, last.Longitude, loc.Latitude, loc.Longitude)
			if moved < watchMinDistanceKm {
				return
			}
		}
		last = &loc
		onUpdate(loc)
	}

	poll()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poll()
		}
	}
}

func classify(ctx context.Context, err error) error {
	if le, ok := err.(*LocationError); ok {
		return le
	}
	if ctx.Err() == context.DeadlineExceeded {
		return &LocationError{Code: ErrTimeout, Err: err}
	}
	return &LocationError{Code: ErrPositionUnavailable, Err: err}
}
