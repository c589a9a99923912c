package geo

import (
	"math"
	"testing"
)

const (
	hanoiLat = 21.0285
	hanoiLng = 105.8542
	hcmcLat  = 10.8231
	hcmcLng  = 106.6297
)

func TestDistanceKmKnownPair(t *testing.T) {
	d := DistanceKm(hanoiLat, hanoiLng, hcmcLat, hcmcLng)
	if d < 1137 || d > 1160 {
		t.Fatalf("Hanoi-HCMC distance out of expected band: %v km", d)
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{hanoiLat, hanoiLng, hcmcLat, hcmcLng},
		{0, 0, 0, 180},
		{-33.8688, 151.2093, 51.5074, -0.1278},
	}
	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1], p[2], p[3])
		ba := DistanceKm(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("asymmetric distance: %v vs %v", ab, ba)
		}
	}
	if d := DistanceKm(hanoiLat, hanoiLng, hanoiLat, hanoiLng); d != 0 {
		t.Errorf("distance to self must be zero, got %v", d)
	}
}

func TestTravelTimeMin(t *testing.T) {
	if got := TravelTimeMin(40, DefaultAverageSpeedKmh); got != 60 {
		t.Errorf("40 km at 40 km/h should take 60 min, got %d", got)
	}
	if got := TravelTimeMin(2, 0); got != 3 {
		t.Errorf("zero speed falls back to the default: expected 3 min, got %d", got)
	}
}

func TestDetourKmNonNegative(t *testing.T) {
	// Station roughly on the straight line between user and destination.
	d := DetourKm(21.0, 105.8, 16.0, 106.2, 10.8, 106.6)
	if d < 0 {
		t.Fatalf("detour must be non-negative, got %v", d)
	}
	// Waypoint identical to origin: zero detour.
	if d := DetourKm(21.0, 105.8, 21.0, 105.8, 10.8, 106.6); d != 0 {
		t.Fatalf("expected zero detour through the origin itself, got %v", d)
	}
	// Waypoint far off the corridor: strictly positive.
	if d := DetourKm(21.0, 105.8, 21.5, 110.0, 10.8, 106.6); d <= 0 {
		t.Fatalf("expected positive detour, got %v", d)
	}
}
