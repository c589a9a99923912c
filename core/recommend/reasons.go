package recommend

import "fmt"

// Reason explains one factor behind a recommendation. Icon is a stable tag
// the UI maps to a glyph; Value carries an optional formatted figure.
type Reason struct {
	Icon  string `json:"icon"`
	Text  string `json:"text"`
	Value string `json:"value,omitempty"`
}

// maxReasons caps how many reasons a recommendation carries.
const maxReasons = 3

// reasonRule pairs an eligibility check with a builder. Rules run in a fixed
// order and only the first maxReasons matches are kept; that ordering is part
// of the output contract.
type reasonRule struct {
	applies func(scoreContext) bool
	build   func(scoreContext) Reason
}

var reasonRules = []reasonRule{
	{
		applies: func(c scoreContext) bool { return c.distance < 3 },
		build: func(c scoreContext) Reason {
			return Reason{Icon: "location", Text: "Very close by", Value: fmt.Sprintf("%.1f km", c.distance)}
		},
	},
	{
		applies: func(c scoreContext) bool { return c.distance >= 3 && c.distance < 10 },
		build: func(c scoreContext) Reason {
			return Reason{Icon: "location", Text: "Nearby", Value: fmt.Sprintf("%.1f km", c.distance)}
		},
	},
	{
		applies: func(c scoreContext) bool { return c.station.MinPrice > 0 && c.station.MinPrice < 4000 },
		build: func(c scoreContext) Reason {
			return Reason{Icon: "price", Text: "Competitive price", Value: fmt.Sprintf("%.0f VND/kWh", c.station.MinPrice)}
		},
	},
	{
		applies: func(c scoreContext) bool { return c.station.MaxPowerKW >= 150 },
		build: func(c scoreContext) Reason {
			return Reason{Icon: "power", Text: "Super-fast charging", Value: fmt.Sprintf("%.0f kW", c.station.MaxPowerKW)}
		},
	},
	{
		applies: func(c scoreContext) bool { return c.station.MaxPowerKW >= 100 && c.station.MaxPowerKW < 150 },
		build: func(c scoreContext) Reason {
			return Reason{Icon: "power", Text: "High power", Value: fmt.Sprintf("%.0f kW", c.station.MaxPowerKW)}
		},
	},
	{
		applies: func(c scoreContext) bool { return c.availabilityScore >= availabilityGoodness },
		build: func(c scoreContext) Reason {
			return Reason{
				Icon:  "availability",
				Text:  "Good availability",
				Value: fmt.Sprintf("%d/%d chargers free", c.station.AvailableChargers, c.station.ChargerCount()),
			}
		},
	},
	{
		applies: func(c scoreContext) bool { return c.connectorMatch },
		build: func(c scoreContext) Reason {
			return Reason{Icon: "connector", Text: "Matches your connector", Value: string(c.params.Vehicle.PreferredConnector)}
		},
	},
	{
		applies: func(c scoreContext) bool { return c.station.AvgRating >= 4.5 },
		build: func(c scoreContext) Reason {
			return Reason{Icon: "rating", Text: "Excellent rating", Value: fmt.Sprintf("%.1f/5", c.station.AvgRating)}
		},
	},
	{
		applies: func(c scoreContext) bool { return c.detour != nil && *c.detour < 2 },
		build: func(c scoreContext) Reason {
			return Reason{Icon: "detour", Text: "Barely off your route", Value: fmt.Sprintf("%.1f km", *c.detour)}
		},
	},
}

// buildReasons evaluates the rule list in order and keeps the first three
// matches.
func buildReasons(ctx scoreContext) []Reason {
	reasons := make([]Reason, 0, maxReasons)
	for _, rule := range reasonRules {
		if len(reasons) == maxReasons {
			break
		}
		if rule.applies(ctx) {
			reasons = append(reasons, rule.build(ctx))
		}
	}
	return reasons
}
