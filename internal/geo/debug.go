package geo

// Fixed coordinates for a handful of metro-Atlanta ZIP codes. Debug
// builds use these to bypass the geolocation provider entirely, so test
// scenarios stay repeatable near known points.
var debugZipCoords = map[string][2]float64{
	"30303": {33.7537, -84.3901}, // Downtown Atlanta
	"30308": {33.7718, -84.3825}, // Midtown Atlanta
	"30339": {33.8884, -84.4694}, // Cumberland
	"30080": {33.8839, -84.5144}, // Smyrna
	"30060": {33.9125, -84.5499}, // Marietta
}

// DebugZipCoordinate returns the fixed lat/lon pair for a supported
// debug ZIP code.
func DebugZipCoordinate(zip string) (lat, lon float64, ok bool) {
	c, ok := debugZipCoords[zip]
	if !ok {
		return 0, 0, false
	}
	return c[0], c[1], true
}
