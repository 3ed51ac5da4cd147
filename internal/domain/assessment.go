package domain

// ZoneMatch pairs a zone with the caller's distance to its center.
type ZoneMatch struct {
	Zone           RiskZone `json:"zone"`
	DistanceMeters float64  `json:"distance_m"`
}

// RiskAssessment is derived per request and persisted with the event.
// Level is the maximum severity among MatchedZones (safe when empty).
// NearestZone is computed over all zones, matched or not.
type RiskAssessment struct {
	Level        RiskLevel   `json:"risk_level"`
	MatchedZones []ZoneMatch `json:"matched_zones"`
	NearestZone  *ZoneMatch  `json:"nearest_zone,omitempty"`
}
