package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLatLng(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Coordinates
		ok    bool
	}{
		{name: "plain pair", input: "14.6928,-17.4467", want: Coordinates{Latitude: 14.6928, Longitude: -17.4467}, ok: true},
		{name: "spaces around parts", input: " 14.6928 , -17.4467 ", want: Coordinates{Latitude: 14.6928, Longitude: -17.4467}, ok: true},
		{name: "integers", input: "15,-17", want: Coordinates{Latitude: 15, Longitude: -17}, ok: true},
		{name: "no comma", input: "Médina Dakar", ok: false},
		{name: "text before comma", input: "Médina, Dakar", ok: false},
		{name: "text after comma", input: "14.6928, Dakar", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "lone comma", input: ",", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLatLng(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
