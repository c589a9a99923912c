package recommend

import (
	"math"
	"sort"

	"github.com/evnav/chargescout/core/geo"
	"github.com/evnav/chargescout/core/logger"
	"github.com/evnav/chargescout/core/model"
)

// Scoring constants shared by every mode.
const (
	connectorBonus       = 20
	rangePenalty         = -50
	neutralScore         = 50
	defaultTopLimit      = 3
	priceBaseline        = 3000 // VND/kWh where the price score starts dropping
	powerScaleKW         = 350  // kW mapped to a full power score
	detourScorePerKm     = 10
	distanceScorePerKm   = 5
	neutralDetourScore   = 100 // applied when no destination is declared
	availabilityGoodness = 70  // availability score worth mentioning as a reason
)

// Destination is an optional trip target; detour scoring only applies when
// one is declared.
type Destination struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name,omitempty"`
}

// Params carries one recommendation request.
type Params struct {
	UserLat     float64          `json:"user_lat"`
	UserLng     float64          `json:"user_lng"`
	Destination *Destination     `json:"destination,omitempty"`
	Vehicle     model.Vehicle    `json:"vehicle"`
	Mode        OptimizationMode `json:"mode"`
	Stations    []model.Station  `json:"stations"`
}

// Recommendation pairs a station with its match score and justification.
type Recommendation struct {
	Station       model.Station `json:"station"`
	MatchPercent  int           `json:"match_percent"`
	Reasons       []Reason      `json:"reasons"`
	TravelTimeMin int           `json:"travel_time_min"`
	DetourKm      *float64      `json:"detour_km,omitempty"`
}

// Config holds the tunable parts of the scorer.
type Config struct {
	// AverageSpeedKmh converts distances into travel times.
	AverageSpeedKmh float64 `json:"average_speed_kmh"`
	// Weights overrides the built-in per-mode weight table; missing modes
	// keep their defaults.
	Weights map[OptimizationMode]Weights `json:"weights"`
}

// SetDefaults fills the speed and any weight table gaps.
func (c *Config) SetDefaults() {
	if c.AverageSpeedKmh <= 0 {
		c.AverageSpeedKmh = geo.DefaultAverageSpeedKmh
	}
	defaults := DefaultWeights()
	if c.Weights == nil {
		c.Weights = defaults
		return
	}
	for mode, w := range defaults {
		if _, ok := c.Weights[mode]; !ok {
			c.Weights[mode] = w
		}
	}
}

// Validate checks the weight table entries.
func (c Config) Validate() error {
	for _, w := range c.Weights {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Scorer ranks stations. It is stateless across calls and safe for
// concurrent use.
type Scorer struct {
	cfg Config
	log logger.Logger
}

// NewScorer returns a Scorer; a nil logger discards output.
func NewScorer(cfg Config, log logger.Logger) *Scorer {
	cfg.SetDefaults()
	if log == nil {
		log = logger.Nop{}
	}
	return &Scorer{cfg: cfg, log: log}
}

// weightsFor resolves the weight vector, falling back to balanced for
// unknown modes.
func (s *Scorer) weightsFor(mode OptimizationMode) Weights {
	if w, ok := s.cfg.Weights[mode]; ok {
		return w
	}
	return s.cfg.Weights[ModeBalanced]
}

// scoreOrNeutral maps an optional aggregate to a sub-score, using the
// neutral midpoint when the value is unknown (zero).
func scoreOrNeutral(value float64, score func(float64) float64) float64 {
	if value == 0 {
		return neutralScore
	}
	return score(value)
}

// scoreContext gathers everything the scoring and reason rules look at for
// one station.
type scoreContext struct {
	station  model.Station
	params   Params
	distance float64
	detour   *float64 // nil without a destination

	distanceScore     float64
	priceScore        float64
	powerScore        float64
	availabilityScore float64
	ratingScore       float64
	detourScore       float64
	connectorMatch    bool
}

func (s *Scorer) buildContext(st model.Station, params Params) scoreContext {
	ctx := scoreContext{station: st, params: params}
	ctx.distance = geo.DistanceKm(params.UserLat, params.UserLng, st.Lat, st.Lng)

	ctx.distanceScore = math.Max(0, 100-ctx.distance*distanceScorePerKm)
	ctx.priceScore = scoreOrNeutral(st.MinPrice, func(p float64) float64 {
		return math.Max(0, 100-(p-priceBaseline)/30)
	})
	ctx.powerScore = scoreOrNeutral(st.MaxPowerKW, func(p float64) float64 {
		return math.Min(100, p/powerScaleKW*100)
	})
	ctx.availabilityScore = scoreOrNeutral(float64(st.AvailableChargers), func(a float64) float64 {
		return math.Min(100, a/math.Max(1, float64(st.ChargerCount()))*100)
	})
	ctx.ratingScore = scoreOrNeutral(st.AvgRating, func(r float64) float64 {
		return r / 5 * 100
	})

	ctx.detourScore = neutralDetourScore
	if d := params.Destination; d != nil {
		detour := geo.DetourKm(params.UserLat, params.UserLng, st.Lat, st.Lng, d.Lat, d.Lng)
		ctx.detour = &detour
		ctx.detourScore = math.Max(0, 100-detour*detourScorePerKm)
	}

	ctx.connectorMatch = st.HasAvailableConnector(params.Vehicle.PreferredConnector)
	return ctx
}

// ScoreStation computes the match score and reasons for one station.
func (s *Scorer) ScoreStation(st model.Station, params Params) Recommendation {
	ctx := s.buildContext(st, params)
	w := s.weightsFor(params.Mode)

	score := ctx.distanceScore*w.Distance +
		ctx.priceScore*w.Price +
		ctx.powerScore*w.Power +
		ctx.availabilityScore*w.Availability +
		ctx.ratingScore*w.Rating +
		ctx.detourScore*w.Detour

	if ctx.connectorMatch {
		score += connectorBonus
	}
	if !params.Vehicle.CanReach(ctx.distance) {
		score += rangePenalty
	}

	match := int(math.Round(math.Min(100, math.Max(0, score))))
	s.log.Debugw("station scored", map[string]any{
		"station": st.ID, "mode": string(params.Mode), "match": match,
	})
	return Recommendation{
		Station:       st,
		MatchPercent:  match,
		Reasons:       buildReasons(ctx),
		TravelTimeMin: geo.TravelTimeMin(ctx.distance, s.cfg.AverageSpeedKmh),
		DetourKm:      ctx.detour,
	}
}

// Recommendations scores every approved candidate and returns the full list
// ranked by descending match percent. Ties break ascending by station ID so
// the order is deterministic.
func (s *Scorer) Recommendations(params Params) []Recommendation {
	recs := make([]Recommendation, 0, len(params.Stations))
	for _, st := range params.Stations {
		if st.Status != model.StationApproved {
			continue
		}
		recs = append(recs, s.ScoreStation(st, params))
	}
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].MatchPercent != recs[j].MatchPercent {
			return recs[i].MatchPercent > recs[j].MatchPercent
		}
		return recs[i].Station.ID < recs[j].Station.ID
	})
	return recs
}

// TopRecommendations truncates the ranked list. A non-positive limit keeps
// the default of three.
func (s *Scorer) TopRecommendations(params Params, limit int) []Recommendation {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	recs := s.Recommendations(params)
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}
