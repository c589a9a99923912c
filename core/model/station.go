package model

// ConnectorType identifies the physical charging-plug standard of a charger.
type ConnectorType string

const (
	ConnectorCCS2    ConnectorType = "CCS2"
	ConnectorType2   ConnectorType = "Type2"
	ConnectorCHAdeMO ConnectorType = "CHAdeMO"
	ConnectorGBT     ConnectorType = "GBT"
)

// ChargerStatus is the operational state of a single charger.
type ChargerStatus string

const (
	ChargerAvailable    ChargerStatus = "available"
	ChargerOccupied     ChargerStatus = "occupied"
	ChargerOutOfService ChargerStatus = "out_of_service"
)

// StationStatus is the moderation state of a station. Only approved stations
// are eligible for recommendation.
type StationStatus string

const (
	StationApproved StationStatus = "approved"
	StationPending  StationStatus = "pending"
	StationRejected StationStatus = "rejected"
)

// DefaultChargerCount is assumed when a station carries no charger list.
const DefaultChargerCount = 4

// Charger belongs to exactly one station.
type Charger struct {
	ID            string        `json:"id"`
	ConnectorType ConnectorType `json:"connector_type"`
	PowerKW       float64       `json:"power_kw"`
	Status        ChargerStatus `json:"status"`
	PricePerKWh   float64       `json:"price_per_kwh"`
}

// Station is a charging location with aggregate fields precomputed by the
// station store. Optional aggregates are zero when unknown; consumers fall
// back to neutral defaults rather than failing.
type Station struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Lat               float64       `json:"lat"`
	Lng               float64       `json:"lng"`
	Provider          string        `json:"provider"`
	Chargers          []Charger     `json:"chargers,omitempty"`
	MinPrice          float64       `json:"min_price,omitempty"`
	MaxPowerKW        float64       `json:"max_power,omitempty"`
	AvailableChargers int           `json:"available_chargers,omitempty"`
	AvgRating         float64       `json:"avg_rating,omitempty"`
	Status            StationStatus `json:"status"`
}

// ChargerCount returns the number of chargers, assuming DefaultChargerCount
// when the charger list is missing.
func (s Station) ChargerCount() int {
	if len(s.Chargers) == 0 {
		return DefaultChargerCount
	}
	return len(s.Chargers)
}

// HasAvailableConnector reports whether any charger of the given connector
// type is currently available.
func (s Station) HasAvailableConnector(ct ConnectorType) bool {
	for _, c := range s.Chargers {
		if c.ConnectorType == ct && c.Status == ChargerAvailable {
			return true
		}
	}
	return false
}
