package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertLevel is the canonical risk level of an alert.
type AlertLevel string

const (
	LevelLow    AlertLevel = "faible"
	LevelMedium AlertLevel = "moyen"
	LevelHigh   AlertLevel = "fort"
)

// LevelFromSeverity normalizes a free-text severity token into a canonical
// level. Unknown or empty input maps to LevelLow; citizen submissions must
// never be rejected over an unrecognized severity.
func LevelFromSeverity(token string) AlertLevel {
	switch token {
	case "medium":
		return LevelMedium
	case "high":
		return LevelHigh
	case "low", "":
		return LevelLow
	default:
		return LevelLow
	}
}

// Alert is an authority-facing risk notice tied to a location.
type Alert struct {
	ID         uuid.UUID  `json:"id"`
	LocationID uuid.UUID  `json:"location_id"`
	Level      AlertLevel `json:"level"`
	Message    string     `json:"message"`
	CreatedAt  time.Time  `json:"created_at"`
}
