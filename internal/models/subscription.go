package models

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription is a browser push registration. Endpoint is globally
// unique: re-subscribing with the same endpoint updates keys in place.
// Coordinates are optional and refreshed by presence updates.
type PushSubscription struct {
	ID        int64      `json:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Endpoint  string     `json:"endpoint"`
	P256dh    string     `json:"p256dh"`
	Auth      string     `json:"auth"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	Locality  string     `json:"locality,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// HasCoordinates reports whether the subscriber shared a last-known position.
func (s *PushSubscription) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}
