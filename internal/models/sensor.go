package models

import (
	"time"

	"github.com/google/uuid"
)

// Sensor is a field station reporting hydrological data, e.g. a water-level
// or rainfall gauge attached to a location.
type Sensor struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	LocationID uuid.UUID `json:"location_id"`
	SensorType string    `json:"sensor_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// Measurement is a single reading from a sensor.
type Measurement struct {
	ID         int64     `json:"id"`
	SensorID   uuid.UUID `json:"sensor_id"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	RecordedAt time.Time `json:"recorded_at"`
}
