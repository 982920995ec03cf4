package locate

import (
	"context"
	"time"

	"locker-rental/internal/data/entity"
)

// StaticPositioner reports a fixed position. It stands in for real
// positioning hardware on platforms without one (the CLI, tests) and
// pairs with debug ZIP overrides for moving the fix around.
type StaticPositioner struct {
	Lat float64
	Lon float64
}

func NewStaticPositioner(lat, lon float64) *StaticPositioner {
	return &StaticPositioner{Lat: lat, Lon: lon}
}

func (s *StaticPositioner) RequestPermission(ctx context.Context) (bool, error) {
	return true, nil
}

func (s *StaticPositioner) CurrentPosition(ctx context.Context) (entity.Location, error) {
	return entity.Location{
		Latitude:  s.Lat,
		Longitude: s.Lon,
		Timestamp: time.Now(),
	}, nil
}
