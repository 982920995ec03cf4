package mockapi

import (
	"time"

	"locker-rental/internal/data/entity"
	"locker-rental/pkg/utils"
)

// seedBusinesses returns a fixed set of metro-Atlanta locations so dev
// scenarios near the debug ZIP coordinates always have results.
// Coordinates are GeoJSON order: [longitude, latitude].
func seedBusinesses() []entity.Business {
	now := time.Now()
	mk := func(name, street, city, zip string, lon, lat float64, total, available int, price, rating float64) entity.Business {
		return entity.Business{
			Base: entity.Base{ID: utils.GenerateUUIDString(), CreatedAt: now, UpdatedAt: now},
			Name: name,
			Address: entity.Address{
				Street:  street,
				City:    city,
				State:   "GA",
				ZipCode: zip,
			},
			Location:         entity.GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}},
			TotalLockers:     total,
			AvailableLockers: available,
			PricePerHour:     price,
			Rating:           rating,
		}
	}

	return []entity.Business{
		mk("Midtown Market Lockers", "10 Peachtree Pl NE", "Atlanta", "30308", -84.3825, 33.7718, 40, 28, 3.50, 4.6),
		mk("Ponce City Storage Hub", "675 Ponce De Leon Ave NE", "Atlanta", "30308", -84.3655, 33.7729, 60, 12, 4.00, 4.8),
		mk("Downtown Depot Lockers", "100 Marietta St NW", "Atlanta", "30303", -84.3901, 33.7537, 30, 30, 2.75, 4.2),
		mk("Cumberland Mall Lockers", "2860 Cumberland Mall SE", "Atlanta", "30339", -84.4694, 33.8884, 50, 45, 3.00, 4.1),
		mk("Smyrna Market Village", "1275 West Spring St SE", "Smyrna", "30080", -84.5144, 33.8839, 20, 7, 2.50, 4.4),
		mk("Marietta Square Storage", "65 Church St NE", "Marietta", "30060", -84.5499, 33.9125, 25, 19, 2.25, 4.7),
	}
}
