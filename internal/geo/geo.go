package geo

import "math"

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// DefaultRadiusKm is the fan-out radius applied when the caller gives none.
const DefaultRadiusKm = 1.5

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Neutral is the fallback point used when a submitted location can neither be
// parsed nor geocoded. Ingestion never blocks on unresolved geography.
var Neutral = Coordinates{Latitude: 0.0, Longitude: 0.0}

// HaversineKm returns the great-circle distance between two points in
// kilometers.
func HaversineKm(a, b Coordinates) float64 {
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Latitude))*math.Cos(radians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(h))
	return earthRadiusKm * c
}

// WithinRadius reports whether candidate lies within radiusKm of ref.
func WithinRadius(ref, candidate Coordinates, radiusKm float64) bool {
	return HaversineKm(ref, candidate) <= radiusKm
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
