package domain

import (
	"time"

	"github.com/google/uuid"
)

type RiskLevel string

const (
	RiskSafe    RiskLevel = "safe"
	RiskCaution RiskLevel = "caution"
	RiskDanger  RiskLevel = "danger"
)

// Severity orders levels for aggregation: danger > caution > safe.
func (l RiskLevel) Severity() int {
	switch l {
	case RiskDanger:
		return 2
	case RiskCaution:
		return 1
	default:
		return 0
	}
}

func (l RiskLevel) Valid() bool {
	switch l {
	case RiskSafe, RiskCaution, RiskDanger:
		return true
	}
	return false
}

type RiskZone struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radius_m"`
	Level        RiskLevel  `json:"risk_level"`
	Active       bool       `json:"active"`
	Description  string     `json:"description,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
