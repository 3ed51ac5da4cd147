package domain

import (
	"time"

	"github.com/google/uuid"
)

type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship,omitempty"`
}

// NotificationTarget is the read-only slice of a user profile the
// pipeline needs: where to push, and who to alert.
type NotificationTarget struct {
	PushToken string             `json:"push_token,omitempty"`
	Contacts  []EmergencyContact `json:"contacts,omitempty"`
}

// ContactAlertPayload is what the background worker posts to the
// emergency-contact webhook after a durable SOS write.
type ContactAlertPayload struct {
	UserID    uuid.UUID          `json:"user_id"`
	Latitude  float64            `json:"latitude"`
	Longitude float64            `json:"longitude"`
	RiskLevel RiskLevel          `json:"risk_level"`
	ZoneIDs   []uuid.UUID        `json:"zone_ids"`
	Contacts  []EmergencyContact `json:"contacts"`
	CheckedAt time.Time          `json:"checked_at"`
}
