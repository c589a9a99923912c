package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evnav/chargescout/core/model"
)

const (
	userLat = 21.0285
	userLng = 105.8542
)

// latOffsetKm shifts a latitude north by roughly the given distance.
func latOffsetKm(km float64) float64 {
	return userLat + km/111.195
}

func ampleVehicle() model.Vehicle {
	return model.Vehicle{
		BatteryKWh:          80,
		SoCPercent:          90,
		ConsumptionPer100Km: 15,
		PreferredConnector:  model.ConnectorCCS2,
	}
}

func approvedStation(id string, distKm float64) model.Station {
	return model.Station{
		ID:     id,
		Lat:    latOffsetKm(distKm),
		Lng:    userLng,
		Status: model.StationApproved,
		Chargers: []model.Charger{
			{ConnectorType: model.ConnectorType2, Status: model.ChargerOccupied},
			{ConnectorType: model.ConnectorType2, Status: model.ChargerAvailable},
			{ConnectorType: model.ConnectorType2, Status: model.ChargerAvailable},
			{ConnectorType: model.ConnectorType2, Status: model.ChargerAvailable},
		},
	}
}

func baseParams(stations ...model.Station) Params {
	return Params{
		UserLat:  userLat,
		UserLng:  userLng,
		Vehicle:  ampleVehicle(),
		Mode:     ModeBalanced,
		Stations: stations,
	}
}

func TestRecommendationsFilterAndOrder(t *testing.T) {
	s := NewScorer(Config{}, nil)
	near := approvedStation("near", 1)
	far := approvedStation("far", 15)
	pending := approvedStation("pending", 0.5)
	pending.Status = model.StationPending

	recs := s.Recommendations(baseParams(near, far, pending))
	require.Len(t, recs, 2, "pending stations are filtered out")
	assert.Equal(t, "near", recs[0].Station.ID)
	assert.Equal(t, "far", recs[1].Station.ID)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].MatchPercent, recs[i].MatchPercent)
	}
	for _, r := range recs {
		assert.GreaterOrEqual(t, r.MatchPercent, 0)
		assert.LessOrEqual(t, r.MatchPercent, 100)
		assert.Nil(t, r.DetourKm, "no destination, no detour")
	}
}

func TestRecommendationsEmptyInput(t *testing.T) {
	s := NewScorer(Config{}, nil)
	assert.Empty(t, s.Recommendations(baseParams()))
}

func TestRecommendationsTieBreakByID(t *testing.T) {
	s := NewScorer(Config{}, nil)
	a := approvedStation("b-station", 2)
	b := approvedStation("a-station", 2)
	recs := s.Recommendations(baseParams(a, b))
	require.Len(t, recs, 2)
	assert.Equal(t, recs[0].MatchPercent, recs[1].MatchPercent)
	assert.Equal(t, "a-station", recs[0].Station.ID)
}

func TestNeutralDefaultsScore(t *testing.T) {
	s := NewScorer(Config{}, nil)
	// Station at the user's position with no aggregates and no charger list:
	// every optional sub-score is the neutral 50, distance score is 100.
	bare := model.Station{ID: "bare", Lat: userLat, Lng: userLng, Status: model.StationApproved}
	rec := s.ScoreStation(bare, baseParams())
	// 0.25*100 + (0.20+0.20+0.25+0.10)*50 = 62.5, rounded half away from zero.
	assert.Equal(t, 63, rec.MatchPercent)
	assert.Equal(t, 0, rec.TravelTimeMin)
}

func TestConnectorBonusExactlyTwenty(t *testing.T) {
	s := NewScorer(Config{}, nil)
	matched := approvedStation("matched", 5)
	matched.Chargers[1].ConnectorType = model.ConnectorCCS2
	plain := approvedStation("plain", 5)

	params := baseParams()
	withBonus := s.ScoreStation(matched, params)
	without := s.ScoreStation(plain, params)
	assert.Equal(t, 20, withBonus.MatchPercent-without.MatchPercent)
}

func TestRangePenalty(t *testing.T) {
	s := NewScorer(Config{}, nil)
	// Strong aggregates keep the penalized score above the clamp floor so the
	// full 50-point penalty is visible in the difference.
	st := approvedStation("st", 12)
	st.MinPrice = 3000
	st.MaxPowerKW = 350
	st.AvailableChargers = 4
	st.AvgRating = 5

	params := baseParams()
	reachable := s.ScoreStation(st, params)

	// 6% charge on a small battery: ~8 km of range, the 12 km trip fails the
	// feasibility margin but the station is still scored, just 50 lower.
	params.Vehicle = model.Vehicle{BatteryKWh: 20, SoCPercent: 6, ConsumptionPer100Km: 15}
	penalized := s.ScoreStation(st, params)
	assert.Equal(t, 50, reachable.MatchPercent-penalized.MatchPercent)
}

func TestModeWeightPriceSensitivity(t *testing.T) {
	s := NewScorer(Config{}, nil)
	cheap := approvedStation("cheap", 5)
	cheap.MinPrice = 3000 // price score 100
	dear := approvedStation("dear", 5)
	dear.MinPrice = 6000 // price score 0

	diff := func(mode OptimizationMode) int {
		params := baseParams()
		params.Mode = mode
		return s.ScoreStation(cheap, params).MatchPercent - s.ScoreStation(dear, params).MatchPercent
	}
	// The same 100-point price gap is worth 0.50 weight under cheapest and
	// only 0.10 under fastest.
	assert.Equal(t, 50, diff(ModeCheapest))
	assert.Equal(t, 10, diff(ModeFastest))
}

func TestUnknownModeFallsBackToBalanced(t *testing.T) {
	s := NewScorer(Config{}, nil)
	st := approvedStation("st", 4)
	params := baseParams(st)
	params.Mode = "turbo"
	got := s.ScoreStation(st, params)
	params.Mode = ModeBalanced
	want := s.ScoreStation(st, params)
	assert.Equal(t, want.MatchPercent, got.MatchPercent)
}

func TestDetourScoring(t *testing.T) {
	s := NewScorer(Config{}, nil)
	onRoute := approvedStation("on-route", 5)
	offRoute := approvedStation("off-route", 5)
	offRoute.Lng = userLng + 0.5 // well off the corridor

	params := baseParams()
	params.Mode = ModeLeastDetour
	params.Destination = &Destination{Lat: latOffsetKm(20), Lng: userLng, Name: "office"}

	on := s.ScoreStation(onRoute, params)
	off := s.ScoreStation(offRoute, params)
	require.NotNil(t, on.DetourKm)
	require.NotNil(t, off.DetourKm)
	assert.GreaterOrEqual(t, *on.DetourKm, 0.0)
	assert.Less(t, *on.DetourKm, 0.1, "station on the corridor adds no detour")
	assert.Greater(t, *off.DetourKm, 10.0)
	assert.Greater(t, on.MatchPercent, off.MatchPercent)
}

func TestScoreStationScenario(t *testing.T) {
	s := NewScorer(Config{}, nil)
	st := approvedStation("scenario", 2)
	st.Chargers[1].ConnectorType = model.ConnectorCCS2
	st.MinPrice = 3500
	st.MaxPowerKW = 150
	st.AvailableChargers = 3
	st.AvgRating = 4.6

	rec := s.ScoreStation(st, baseParams())
	assert.GreaterOrEqual(t, rec.MatchPercent, 80)
	require.Len(t, rec.Reasons, 3)
	// Four rules are eligible (distance, price, power, availability); the
	// first three in evaluation order are kept.
	assert.Equal(t, "location", rec.Reasons[0].Icon)
	assert.Equal(t, "Very close by", rec.Reasons[0].Text)
	assert.Equal(t, "price", rec.Reasons[1].Icon)
	assert.Equal(t, "power", rec.Reasons[2].Icon)
	assert.Equal(t, "Super-fast charging", rec.Reasons[2].Text)
	assert.Equal(t, 3, rec.TravelTimeMin)
}

func TestReasonTiers(t *testing.T) {
	s := NewScorer(Config{}, nil)

	mid := approvedStation("mid", 6)
	mid.MaxPowerKW = 120
	rec := s.ScoreStation(mid, baseParams())
	require.Len(t, rec.Reasons, 2)
	assert.Equal(t, "Nearby", rec.Reasons[0].Text)
	assert.Equal(t, "High power", rec.Reasons[1].Text)

	rated := approvedStation("rated", 20)
	rated.AvgRating = 4.8
	rec = s.ScoreStation(rated, baseParams())
	require.Len(t, rec.Reasons, 1)
	assert.Equal(t, "rating", rec.Reasons[0].Icon)
}

func TestTopRecommendations(t *testing.T) {
	s := NewScorer(Config{}, nil)
	params := baseParams(
		approvedStation("a", 1),
		approvedStation("b", 2),
		approvedStation("c", 3),
		approvedStation("d", 4),
	)
	assert.Len(t, s.TopRecommendations(params, 0), 3, "non-positive limit defaults to 3")
	assert.Len(t, s.TopRecommendations(params, 2), 2)
	top := s.TopRecommendations(params, 10)
	assert.Len(t, top, 4)
	assert.Equal(t, "a", top[0].Station.ID)
}
