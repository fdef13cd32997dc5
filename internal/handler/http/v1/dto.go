package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest is a registration payload.
// @Description Registration payload
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name,omitempty" validate:"max=100"`
	LastName  string `json:"last_name,omitempty" validate:"max=100"`
	Password  string `json:"password" validate:"required,min=8"`
}

// LoginRequest is a credential check payload.
// @Description Credential check payload
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is a public account profile.
// @Description Public account profile
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	IsStaff   bool      `json:"is_staff"`
}

// AuthResponse carries an access token and the profile it belongs to.
// @Description Access token and profile
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// AlertResponse is an alert record.
// @Description Alert record
type AlertResponse struct {
	ID         uuid.UUID `json:"id"`
	LocationID uuid.UUID `json:"location_id"`
	Level      string    `json:"level"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// SubmitReportResponse identifies what a report submission created.
// @Description Result of a report submission
type SubmitReportResponse struct {
	OK            bool      `json:"ok"`
	SignalementID uuid.UUID `json:"signalement_id"`
	AlerteID      uuid.UUID `json:"alerte_id"`
	Level         string    `json:"level"`
	Photos        []string  `json:"photos"`
}

// ReportResponse is a report record.
// @Description Report record
type ReportResponse struct {
	ID           uuid.UUID  `json:"id"`
	LocationID   uuid.UUID  `json:"location_id"`
	AlerteID     *uuid.UUID `json:"alerte_id,omitempty"`
	Status       string     `json:"status"`
	IncidentType string     `json:"type_incident,omitempty"`
	LocationText string     `json:"location,omitempty"`
	Severity     string     `json:"severity,omitempty"`
	Description  string     `json:"description"`
	FirstName    string     `json:"prenom,omitempty"`
	LastName     string     `json:"nom,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Photos       []string   `json:"photos,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// SubmitDamageRequest declares flood damage, multipart with optional pieces.
// @Description Damage declaration form fields
type SubmitDamageRequest struct {
	PropertyType    string `form:"property_type" validate:"required,max=100"`
	LossAmountText  string `form:"loss_amount_text" validate:"max=100"`
	LossDescription string `form:"loss_description"`
	PeopleAffected  int    `form:"people_affected" validate:"gte=0"`
	Remarks         string `form:"remarks"`
}

// DamageResponse is a damage declaration record.
// @Description Damage declaration record
type DamageResponse struct {
	ID              uuid.UUID `json:"id"`
	PropertyType    string    `json:"property_type"`
	LossAmountText  string    `json:"loss_amount_text,omitempty"`
	LossDescription string    `json:"loss_description,omitempty"`
	PeopleAffected  int       `json:"people_affected"`
	Remarks         string    `json:"remarks,omitempty"`
	Pieces          []string  `json:"pieces,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// SubmitAssistanceRequest asks for help.
// @Description Assistance request payload
type SubmitAssistanceRequest struct {
	LocationText string `json:"location" validate:"required,max=255"`
	HelpType     string `json:"help_type" validate:"required,max=100"`
	PeopleCount  int    `json:"people_count" validate:"gte=0"`
	Phone        string `json:"phone" validate:"required,max=50"`
	Availability string `json:"availability,omitempty" validate:"max=100"`
	UrgencyNote  string `json:"urgency_note,omitempty"`
}

// AssistanceResponse is an assistance request record.
// @Description Assistance request record
type AssistanceResponse struct {
	ID           uuid.UUID `json:"id"`
	LocationText string    `json:"location"`
	HelpType     string    `json:"help_type"`
	PeopleCount  int       `json:"people_count"`
	Phone        string    `json:"phone"`
	Availability string    `json:"availability,omitempty"`
	UrgencyNote  string    `json:"urgency_note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SubscribeRequest is a browser push registration.
// @Description Browser push registration
type SubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
	Keys     struct {
		P256dh string `json:"p256dh" validate:"required"`
		Auth   string `json:"auth" validate:"required"`
	} `json:"keys" validate:"required"`
}

// PresenceRequest updates a subscriber's last-known position.
// @Description Subscriber position update
type PresenceRequest struct {
	Endpoint string  `json:"endpoint" validate:"required,url"`
	Lat      float64 `json:"lat" validate:"latitude"`
	Lng      float64 `json:"lng" validate:"longitude"`
	Locality string  `json:"locality,omitempty" validate:"max=120"`
}

// AlertAreaRequest triggers a geo-targeted fan-out.
// @Description Geo-targeted fan-out request
type AlertAreaRequest struct {
	SignalementID *uuid.UUID `json:"signalement_id,omitempty"`
	AlerteID      *uuid.UUID `json:"alerte_id,omitempty"`
	RadiusKm      float64    `json:"radius_km,omitempty" validate:"gte=0"`
	Title         string     `json:"title,omitempty" validate:"max=255"`
	Body          string     `json:"body,omitempty"`
	URL           string     `json:"url,omitempty" validate:"max=255"`
}

// FanoutResponse reports delivery counts.
// @Description Delivery counts of a fan-out
type FanoutResponse struct {
	OK      bool `json:"ok"`
	Sent    int  `json:"sent"`
	Removed int  `json:"removed"`
}

// CreateSensorRequest registers a field station.
// @Description Field station registration
type CreateSensorRequest struct {
	Code       string    `json:"code" validate:"required,max=50"`
	LocationID uuid.UUID `json:"location_id" validate:"required"`
	SensorType string    `json:"sensor_type" validate:"required,max=50"`
}

// SensorResponse is a field station record.
// @Description Field station record
type SensorResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	LocationID uuid.UUID `json:"location_id"`
	SensorType string    `json:"sensor_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// RecordMeasurementRequest stores a sensor reading.
// @Description Sensor reading payload
type RecordMeasurementRequest struct {
	SensorID uuid.UUID `json:"sensor_id" validate:"required"`
	Value    float64   `json:"value" validate:"required"`
	Unit     string    `json:"unit" validate:"required,max=20"`
}

// MeasurementResponse is a sensor reading.
// @Description Sensor reading record
type MeasurementResponse struct {
	ID         int64     `json:"id"`
	SensorID   uuid.UUID `json:"sensor_id"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	RecordedAt time.Time `json:"recorded_at"`
}

// StatsResponse aggregates dashboard counters.
// @Description Dashboard counters
type StatsResponse struct {
	Pending       int `json:"pending"`
	Verified      int `json:"verified"`
	Resolved      int `json:"resolved"`
	Total         int `json:"total"`
	Subscriptions int `json:"subscriptions"`
}
