package domain

import "time"

type AssessRequest struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
}

type ZoneHit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Level          RiskLevel `json:"risk_level"`
	DistanceMeters float64   `json:"distance_m"`
}

type AssessResponse struct {
	RiskLevel    RiskLevel  `json:"risk_level"`
	ActiveZones  []ZoneHit  `json:"active_zones"`
	NearestZone  *ZoneHit   `json:"nearest_zone"`
	UserLocation Coordinate `json:"user_location"`
}

type SOSRequest struct {
	Latitude    float64   `json:"latitude" validate:"lat"`
	Longitude   float64   `json:"longitude" validate:"lng"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
	EvidenceURL string    `json:"evidence_url,omitempty" validate:"omitempty,uri"`
	Mode        EventMode `json:"mode,omitempty" validate:"omitempty,oneof=normal discreet"`
	Source      string    `json:"source,omitempty" validate:"omitempty,max=64"`
}

// NotificationOutcome mirrors the dispatcher result attached to the SOS
// response as diagnostic metadata. It never affects the status code.
type NotificationOutcome struct {
	Status string `json:"status"` // sent | skipped-no-target | failed
	Reason string `json:"reason,omitempty"`
}

type SOSResponse struct {
	ID           string              `json:"id"`
	Latitude     float64             `json:"latitude"`
	Longitude    float64             `json:"longitude"`
	Timestamp    time.Time           `json:"timestamp"`
	EvidenceURL  string              `json:"evidence_url,omitempty"`
	Mode         EventMode           `json:"mode"`
	Source       string              `json:"source"`
	RiskLevel    RiskLevel           `json:"risk_level"`
	Notification NotificationOutcome `json:"notification"`
	Message      string              `json:"message"`
}
