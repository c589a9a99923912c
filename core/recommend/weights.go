package recommend

import "fmt"

// OptimizationMode selects the weight vector applied to the sub-scores.
type OptimizationMode string

const (
	ModeFastest     OptimizationMode = "fastest"
	ModeCheapest    OptimizationMode = "cheapest"
	ModeBalanced    OptimizationMode = "balanced"
	ModeLeastDetour OptimizationMode = "least_detour"
	ModeLeastWait   OptimizationMode = "least_wait"
)

// Weights is the per-mode weight vector over the sub-scores. Detour only
// carries weight in detour-sensitive modes.
type Weights struct {
	Distance     float64 `json:"distance"`
	Price        float64 `json:"price"`
	Power        float64 `json:"power"`
	Availability float64 `json:"availability"`
	Rating       float64 `json:"rating"`
	Detour       float64 `json:"detour"`
}

// DefaultWeights returns the built-in weight table. Modeled as data rather
// than branching so new modes are a table entry, not a code path.
func DefaultWeights() map[OptimizationMode]Weights {
	return map[OptimizationMode]Weights{
		ModeFastest:     {Distance: 0.40, Price: 0.10, Power: 0.30, Availability: 0.15, Rating: 0.05},
		ModeCheapest:    {Distance: 0.20, Price: 0.50, Power: 0.10, Availability: 0.15, Rating: 0.05},
		ModeLeastDetour: {Distance: 0.20, Price: 0.10, Power: 0.10, Availability: 0.10, Rating: 0.05, Detour: 0.45},
		ModeLeastWait:   {Distance: 0.20, Price: 0.10, Power: 0.20, Availability: 0.45, Rating: 0.05},
		ModeBalanced:    {Distance: 0.25, Price: 0.20, Power: 0.20, Availability: 0.25, Rating: 0.10},
	}
}

// Validate rejects negative weight entries.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Distance, w.Price, w.Power, w.Availability, w.Rating, w.Detour} {
		if v < 0 {
			return fmt.Errorf("weights must be non-negative")
		}
	}
	return nil
}
