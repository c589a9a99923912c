package model

import "fmt"

// RangeSafetyMargin keeps a reserve when judging whether a station is
// reachable on the current charge.
const RangeSafetyMargin = 0.9

// Vehicle describes the driver's car. It is used only for range feasibility
// and connector matching; the engine never mutates it.
type Vehicle struct {
	BatteryKWh          float64       `json:"battery_kwh"`
	SoCPercent          float64       `json:"soc_current"` // state of charge, 0-100
	ConsumptionPer100Km float64       `json:"consumption_kwh_per_100km"`
	PreferredConnector  ConnectorType `json:"preferred_connector"`
}

// Validate checks that the vehicle configuration is sound. Callers feeding
// vehicles into the scoring engine are expected to validate at the boundary.
func (v Vehicle) Validate() error {
	if v.BatteryKWh <= 0 {
		return fmt.Errorf("battery capacity must be positive")
	}
	if v.ConsumptionPer100Km <= 0 {
		return fmt.Errorf("consumption must be positive")
	}
	if v.SoCPercent < 0 || v.SoCPercent > 100 {
		return fmt.Errorf("state of charge must be between 0 and 100")
	}
	return nil
}

// RangeKm returns the distance the vehicle can cover on its current charge.
// Non-positive consumption is treated as unlimited range; Validate rejects it
// at the boundary, but the engine must not divide by zero if it slips through.
func (v Vehicle) RangeKm() float64 {
	if v.ConsumptionPer100Km <= 0 {
		return -1
	}
	energy := v.BatteryKWh * v.SoCPercent / 100
	return energy / (v.ConsumptionPer100Km / 100)
}

// CanReach reports whether the vehicle covers distanceKm with the safety
// margin applied.
func (v Vehicle) CanReach(distanceKm float64) bool {
	r := v.RangeKm()
	if r < 0 {
		return true
	}
	return distanceKm < r*RangeSafetyMargin
}
