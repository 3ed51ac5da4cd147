package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventMode string

const (
	ModeNormal   EventMode = "normal"
	ModeDiscreet EventMode = "discreet"
)

func (m EventMode) Valid() bool {
	return m == ModeNormal || m == ModeDiscreet
}

// SafetyEvent is one recorded SOS or passive assess check. Append-only:
// once recorded it is never updated or deleted.
type SafetyEvent struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Location    Coordinate      `json:"location"`
	Mode        EventMode       `json:"mode"`
	Source      string          `json:"source"`
	EvidenceURL string          `json:"evidence_url,omitempty"`
	Assessment  *RiskAssessment `json:"assessment,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
