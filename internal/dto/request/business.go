package request

// SearchBusinessRequest is an explicit search: exactly one of ZipCode
// or Name drives the query.
type SearchBusinessRequest struct {
	ZipCode string `json:"zipCode,omitempty" validate:"omitempty,len=5,numeric"`
	Name    string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
}

// NearbyBusinessRequest is an ambient lookup by radius around a point.
type NearbyBusinessRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	RadiusKm  float64 `json:"radius" validate:"required,gt=0,lte=100"`
}
