package models

import (
	"time"

	"github.com/google/uuid"
)

// Location is a named geolocated point. Rows are immutable once created:
// reports and alerts reference them, nothing ever updates them.
type Location struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}
