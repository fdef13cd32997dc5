package geo

import (
	"strconv"
	"strings"
)

// ParseLatLng parses a combined "lat,lng" string into a coordinate pair.
// The second return value is false when the input is not two comma-separated
// floats; callers fall back to geocoding, this is not an error.
func ParseLatLng(s string) (Coordinates, bool) {
	if !strings.Contains(s, ",") {
		return Coordinates{}, false
	}
	parts := strings.SplitN(s, ",", 2)

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: lat, Longitude: lng}, true
}
