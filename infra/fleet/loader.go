// Package fleet loads station, vehicle and booking fixtures from JSON files.
// It stands in for the station store and profile collaborators that feed the
// scoring and prediction engines in production.
package fleet

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/evnav/chargescout/core/model"
)

// LoadStations reads a JSON array of stations.
func LoadStations(path string) ([]model.Station, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stations: %w", err)
	}
	var stations []model.Station
	if err := json.Unmarshal(data, &stations); err != nil {
		return nil, fmt.Errorf("decode stations: %w", err)
	}
	return stations, nil
}

// LoadVehicle reads a single vehicle record and validates it at the boundary
// so the engines can assume well-formed numeric inputs.
func LoadVehicle(path string) (model.Vehicle, error) {
	var v model.Vehicle
	data, err := os.ReadFile(path)
	if err != nil {
		return v, fmt.Errorf("read vehicle: %w", err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode vehicle: %w", err)
	}
	if err := v.Validate(); err != nil {
		return v, fmt.Errorf("vehicle %s: %w", path, err)
	}
	return v, nil
}

// LoadBookings reads a JSON array of bookings. A missing path is not an
// error: booking data is an optional confidence signal.
func LoadBookings(path string) ([]model.Booking, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bookings: %w", err)
	}
	var bookings []model.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}
