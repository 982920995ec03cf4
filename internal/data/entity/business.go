package entity

// GeoPoint follows the GeoJSON point convention: Coordinates holds
// [longitude, latitude] in that axis order. Index [1] for latitude and
// [0] for longitude everywhere; mixing the axes up is the single most
// common display bug with this payload.
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Latitude returns the second coordinate of the GeoJSON pair.
func (p GeoPoint) Latitude() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[1]
}

// Longitude returns the first coordinate of the GeoJSON pair.
func (p GeoPoint) Longitude() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[0]
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

type Business struct {
	Base
	Name             string   `json:"name"`
	Address          Address  `json:"address"`
	Location         GeoPoint `json:"location"`
	TotalLockers     int      `json:"totalLockers"`
	AvailableLockers int      `json:"availableLockers"`
	PricePerHour     float64  `json:"pricePerHour"`
	Rating           float64  `json:"rating"`

	// DistanceKm is populated only by the nearby-search path; other
	// endpoints leave it nil.
	DistanceKm *float64 `json:"distance,omitempty"`
}
