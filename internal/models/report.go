package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus is the review state of a citizen report.
type ReportStatus string

const (
	StatusPending  ReportStatus = "pending"
	StatusVerified ReportStatus = "verified"
	StatusResolved ReportStatus = "resolved"
)

// Report is a citizen-submitted incident record (signalement). AlertID points
// to the alert created in the same ingestion transaction and is nulled when
// that alert is deleted.
type Report struct {
	ID           uuid.UUID      `json:"id"`
	LocationID   uuid.UUID      `json:"location_id"`
	AlertID      *uuid.UUID     `json:"alert_id,omitempty"`
	CreatedBy    *uuid.UUID     `json:"created_by,omitempty"`
	Status       ReportStatus   `json:"status"`
	IncidentType string         `json:"incident_type,omitempty"`
	LocationText string         `json:"location_text,omitempty"`
	Severity     string         `json:"severity,omitempty"`
	Description  string         `json:"description"`
	FirstName    string         `json:"first_name,omitempty"`
	LastName     string         `json:"last_name,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	Photos       []*ReportPhoto `json:"photos,omitempty"`
}

// ReportPhoto is a media file attached to a report, cascade-deleted with it.
type ReportPhoto struct {
	ID         int64     `json:"id"`
	ReportID   uuid.UUID `json:"report_id"`
	FilePath   string    `json:"file_path"`
	UploadedAt time.Time `json:"uploaded_at"`
}
