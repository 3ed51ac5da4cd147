package service

import (
	"log/slog"

	"safesignal/internal/domain"
	"safesignal/internal/geo"
)

// EmptyZonePolicy decides what Assess does with an empty zone set.
// PolicyNone is the production posture: no zones means safe.
// PolicyDemo substitutes a single synthetic caution zone around the
// queried point so local setups without seeded data still show a match.
type EmptyZonePolicy string

const (
	PolicyNone EmptyZonePolicy = "none"
	PolicyDemo EmptyZonePolicy = "demo"
)

const demoZoneRadiusMeters = 500.0

type RiskEngine struct {
	policy EmptyZonePolicy
	logger *slog.Logger
}

func NewRiskEngine(policy EmptyZonePolicy, logger *slog.Logger) *RiskEngine {
	if policy == "" {
		policy = PolicyNone
	}
	return &RiskEngine{policy: policy, logger: logger}
}

// Assess runs a linear point-location test over the zone set.
// MatchedZones keeps input order; the aggregate level is the maximum
// severity among matches, safe when there are none. NearestZone ranges
// over all zones, matched or not, with ties broken by first occurrence.
// Pure by precondition: callers validate the coordinate first.
func (en *RiskEngine) Assess(p domain.Coordinate, zones []domain.RiskZone) domain.RiskAssessment {
	if len(zones) == 0 && en.policy == PolicyDemo {
		en.logger.Warn("no active zones configured, substituting demo zone; do not run this policy in production")
		zones = []domain.RiskZone{demoZone(p)}
	}

	out := domain.RiskAssessment{
		Level:        domain.RiskSafe,
		MatchedZones: make([]domain.ZoneMatch, 0, len(zones)),
	}

	for _, z := range zones {
		dist := geo.DistanceMeters(p, z.Center)
		if dist <= z.RadiusMeters {
			out.MatchedZones = append(out.MatchedZones, domain.ZoneMatch{Zone: z, DistanceMeters: dist})
			if z.Level.Severity() > out.Level.Severity() {
				out.Level = z.Level
			}
		}
		if out.NearestZone == nil || dist < out.NearestZone.DistanceMeters {
			m := domain.ZoneMatch{Zone: z, DistanceMeters: dist}
			out.NearestZone = &m
		}
	}

	return out
}

func demoZone(p domain.Coordinate) domain.RiskZone {
	return domain.RiskZone{
		Name:         "demo zone",
		Center:       p,
		RadiusMeters: demoZoneRadiusMeters,
		Level:        domain.RiskCaution,
		Active:       true,
		Description:  "synthetic zone injected by ZONE_EMPTY_POLICY=demo",
	}
}
