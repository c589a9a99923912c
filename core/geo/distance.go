// Package geo provides great-circle helpers for trip distance, travel time
// and detour computation.
package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

const (
	// EarthRadiusKm is Earth's mean radius in kilometers.
	EarthRadiusKm = 6371.0

	// DefaultAverageSpeedKmh is the assumed urban driving speed used to turn
	// distances into travel times.
	DefaultAverageSpeedKmh = 40.0
)

// DistanceKm calculates the great-circle distance between two points in
// kilometers using the haversine formula.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// TravelTimeMin estimates driving minutes for the given distance at the given
// average speed. Non-positive speeds fall back to DefaultAverageSpeedKmh.
func TravelTimeMin(distanceKm, speedKmh float64) int {
	if speedKmh <= 0 {
		speedKmh = DefaultAverageSpeedKmh
	}
	return int(math.Round(distanceKm / speedKmh * 60))
}

// DetourKm returns the extra distance incurred by routing through a waypoint
// versus driving straight from origin to destination. The triangle inequality
// keeps the result non-negative; tiny negative float residue is clamped.
func DetourKm(userLat, userLng, viaLat, viaLng, destLat, destLng float64) float64 {
	direct := DistanceKm(userLat, userLng, destLat, destLng)
	via := DistanceKm(userLat, userLng, viaLat, viaLng) + DistanceKm(viaLat, viaLng, destLat, destLng)
	return math.Max(0, via-direct)
}
