package models

import (
	"time"

	"github.com/google/uuid"
)

// DamageDeclaration is a citizen declaration of flood damage. It is not tied
// to a location or alert; authorities review it for compensation.
type DamageDeclaration struct {
	ID              uuid.UUID      `json:"id"`
	CreatedBy       *uuid.UUID     `json:"created_by,omitempty"`
	PropertyType    string         `json:"property_type"`
	LossAmountText  string         `json:"loss_amount_text,omitempty"`
	LossDescription string         `json:"loss_description,omitempty"`
	PeopleAffected  int            `json:"people_affected"`
	Remarks         string         `json:"remarks,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	Pieces          []*DamagePiece `json:"pieces,omitempty"`
}

// DamagePiece is a supporting document attached to a damage declaration.
type DamagePiece struct {
	ID         int64     `json:"id"`
	DamageID   uuid.UUID `json:"damage_id"`
	FilePath   string    `json:"file_path"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// AssistanceRequest is a citizen request for help (rescue, shelter, food,
// transport, medical evacuation).
type AssistanceRequest struct {
	ID           uuid.UUID  `json:"id"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty"`
	LocationText string     `json:"location_text"`
	HelpType     string     `json:"help_type"`
	PeopleCount  int        `json:"people_count"`
	Phone        string     `json:"phone"`
	Availability string     `json:"availability,omitempty"`
	UrgencyNote  string     `json:"urgency_note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
