package occupancy

import "fmt"

// Window is an inclusive hour range within a single day.
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether hour falls inside the window.
func (w Window) Contains(hour int) bool {
	return hour >= w.Start && hour <= w.End
}

// DefaultBaseOccupancy is the starting ratio used when none is configured.
const DefaultBaseOccupancy = 0.30

// Config defines the occupancy heuristic parameters loaded from configuration.
type Config struct {
	// BaseOccupancy is the starting ratio before any adjustment. A pointer so
	// an explicit zero survives loading; nil selects DefaultBaseOccupancy.
	BaseOccupancy *float64 `json:"base_occupancy"`
	// MorningPeak and EveningPeak are the commute windows. The zero-value
	// window means "not configured" and selects the built-in default.
	MorningPeak Window `json:"morning_peak"`
	EveningPeak Window `json:"evening_peak"`
	// ProviderBoosts adds a fixed occupancy offset for busy networks.
	ProviderBoosts map[string]float64 `json:"provider_boosts"`
}

// SetDefaults applies the baseline heuristic parameters.
func (c *Config) SetDefaults() {
	if c.BaseOccupancy == nil {
		base := DefaultBaseOccupancy
		c.BaseOccupancy = &base
	}
	if c.MorningPeak == (Window{}) {
		c.MorningPeak = Window{Start: 6, End: 9}
	}
	if c.EveningPeak == (Window{}) {
		c.EveningPeak = Window{Start: 17, End: 21}
	}
	if c.ProviderBoosts == nil {
		c.ProviderBoosts = map[string]float64{"VinFast": 0.10}
	}
}

// Validate checks window sanity.
func (c Config) Validate() error {
	for _, w := range []Window{c.MorningPeak, c.EveningPeak} {
		if w.Start < 0 || w.End > 23 || w.Start > w.End {
			return fmt.Errorf("invalid peak window %d-%d", w.Start, w.End)
		}
	}
	if c.BaseOccupancy != nil && (*c.BaseOccupancy < 0 || *c.BaseOccupancy > 1) {
		return fmt.Errorf("base occupancy must be within [0,1]")
	}
	return nil
}
