package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var plateau = Coordinates{Latitude: 14.6928, Longitude: -17.4467}

func TestHaversineKm_ZeroDistance(t *testing.T) {
	assert.Equal(t, 0.0, HaversineKm(plateau, plateau))
}

func TestHaversineKm_Symmetry(t *testing.T) {
	yoff := Coordinates{Latitude: 14.7447, Longitude: -17.4732}

	forward := HaversineKm(plateau, yoff)
	backward := HaversineKm(yoff, plateau)

	assert.InDelta(t, forward, backward, 1e-9)
	assert.Greater(t, forward, 0.0)
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	// 0.012591 degrees of latitude is about 1.4 km on a 6371 km sphere.
	near := Coordinates{Latitude: plateau.Latitude + 0.012591, Longitude: plateau.Longitude}

	assert.InDelta(t, 1.4, HaversineKm(plateau, near), 0.01)
}

func TestWithinRadius(t *testing.T) {
	near := Coordinates{Latitude: plateau.Latitude + 0.012591, Longitude: plateau.Longitude} // ~1.4 km
	far := Coordinates{Latitude: plateau.Latitude + 0.014389, Longitude: plateau.Longitude}  // ~1.6 km

	assert.True(t, WithinRadius(plateau, near, DefaultRadiusKm))
	assert.False(t, WithinRadius(plateau, far, DefaultRadiusKm))
}

func TestWithinRadius_BoundaryIncluded(t *testing.T) {
	assert.True(t, WithinRadius(plateau, plateau, 0))
}
