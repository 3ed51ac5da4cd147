package geo

import (
	"math"

	"safesignal/internal/domain"
)

// earthRadiusMeters is the spherical-Earth approximation used by the
// haversine formula.
const earthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance between two
// coordinates. Pure; NaN inputs propagate, callers validate first.
func DistanceMeters(a, b domain.Coordinate) float64 {
	dLat := deg2rad(b.Latitude - a.Latitude)
	dLng := deg2rad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Latitude))*math.Cos(deg2rad(b.Latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// IsWithin reports whether the point lies inside the zone's circle.
// The boundary is inclusive: a point exactly at the radius is inside.
func IsWithin(p domain.Coordinate, z domain.RiskZone) bool {
	return DistanceMeters(p, z.Center) <= z.RadiusMeters
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
