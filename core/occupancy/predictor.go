package occupancy

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/evnav/chargescout/core/logger"
	"github.com/evnav/chargescout/core/model"
	"github.com/evnav/chargescout/internal/clock"
)

// CrowdLevel is the coarse occupancy classification for one hour.
type CrowdLevel string

const (
	LevelLow    CrowdLevel = "low"
	LevelMedium CrowdLevel = "medium"
	LevelHigh   CrowdLevel = "high"
)

// Classification thresholds. Golden-hour extraction keys off LevelLow, so
// these are part of the contract, not tuning knobs.
const (
	lowThreshold  = 0.4
	highThreshold = 0.7
)

// HourlyPrediction is the forecast for a single hour of the day.
type HourlyPrediction struct {
	Hour             int        `json:"hour"`
	Level            CrowdLevel `json:"level"`
	Confidence       int        `json:"confidence"`
	EstimatedWaitMin int        `json:"estimated_wait_min"`
}

// GoldenHour is a contiguous block of hours predicted to be quiet.
type GoldenHour struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// maxGoldenHours caps the number of windows returned, in order of discovery.
const maxGoldenHours = 3

// Predictor derives occupancy forecasts for a station. The clock and random
// source are injected so tests can pin the current hour and the jitter.
type Predictor struct {
	cfg        Config
	clock      clock.Clock
	occJitter  distuv.Uniform
	confJitter distuv.Uniform
	log        logger.Logger
}

// New returns a Predictor. A nil clock reads the system time; a nil source
// uses the shared global one; a nil logger discards output.
func New(cfg Config, clk clock.Clock, src rand.Source, log logger.Logger) *Predictor {
	cfg.SetDefaults()
	if clk == nil {
		clk = clock.Real{}
	}
	if log == nil {
		log = logger.Nop{}
	}
	return &Predictor{
		cfg:        cfg,
		clock:      clk,
		occJitter:  distuv.Uniform{Min: -0.05, Max: 0.05, Src: src},
		confJitter: distuv.Uniform{Min: -5, Max: 5, Src: src},
		log:        log,
	}
}

// HourlyOccupancy estimates the occupancy ratio [0,1] for the given hour.
// Adjustments are additive and independent; the sum is clamped at the end.
func (p *Predictor) HourlyOccupancy(hour int, station model.Station) float64 {
	occ := *p.cfg.BaseOccupancy

	if p.cfg.MorningPeak.Contains(hour) {
		occ += 0.35
		if hour == 8 {
			occ += 0.10
		}
	}
	if p.cfg.EveningPeak.Contains(hour) {
		occ += 0.40
		if hour == 18 || hour == 19 {
			occ += 0.15
		}
	}
	if hour >= 11 && hour <= 13 {
		occ += 0.15
	}
	if hour >= 22 || hour < 6 {
		occ -= 0.20
	}

	if clock.IsWeekend(p.clock.Now()) {
		if hour >= 9 && hour <= 11 {
			occ += 0.20
		}
		if p.cfg.EveningPeak.Contains(hour) {
			occ -= 0.10
		}
	}

	count := station.ChargerCount()
	if count < 4 {
		occ += 0.15
	} else if count > 8 {
		occ -= 0.10
	}

	occ += p.cfg.ProviderBoosts[station.Provider]
	occ += p.occJitter.Rand()

	return math.Min(1, math.Max(0, occ))
}

// Classify buckets an occupancy ratio into a crowd level.
func Classify(ratio float64) CrowdLevel {
	switch {
	case ratio < lowThreshold:
		return LevelLow
	case ratio < highThreshold:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// EstimateWait converts a crowd level into expected queueing minutes. Larger
// stations absorb demand better, so the base wait is damped by charger count
// down to a 0.5 floor.
func EstimateWait(level CrowdLevel, totalChargers int) int {
	var base float64
	switch level {
	case LevelMedium:
		base = 10
	case LevelHigh:
		base = 25
	}
	factor := math.Max(0.5, 1-float64(totalChargers-4)*0.1)
	return int(math.Round(base * factor))
}

// EstimateConfidence scores how trustworthy a forecast for the given hour is.
// Hours close to now are more certain; booking history adds certainty. The
// result is an integer percentage within [50,95].
func (p *Predictor) EstimateConfidence(hour int, hasBookingData bool) int {
	conf := 70.0
	switch diff := math.Abs(float64(hour - p.clock.Now().Hour())); {
	case diff <= 2:
		conf += 15
	case diff <= 6:
		conf += 5
	default:
		conf -= 10
	}
	if hasBookingData {
		conf += 10
	}
	conf += p.confJitter.Rand()
	return int(math.Round(math.Min(95, math.Max(50, conf))))
}

// HourlyPredictions builds the full 24-hour forecast for a station. Bookings
// only contribute as a presence signal to the confidence model.
func (p *Predictor) HourlyPredictions(station model.Station, bookings []model.Booking) []HourlyPrediction {
	hasBookings := len(bookings) > 0
	total := station.ChargerCount()
	preds := make([]HourlyPrediction, 0, 24)
	for hour := 0; hour < 24; hour++ {
		level := Classify(p.HourlyOccupancy(hour, station))
		preds = append(preds, HourlyPrediction{
			Hour:             hour,
			Level:            level,
			Confidence:       p.EstimateConfidence(hour, hasBookings),
			EstimatedWaitMin: EstimateWait(level, total),
		})
	}
	p.log.Debugw("hourly predictions computed", map[string]any{
		"station": station.ID, "bookings": len(bookings),
	})
	return preds
}

// GoldenHours extracts up to three contiguous low-crowd windows from a
// forecast, in the order encountered. Windows never wrap past midnight.
func GoldenHours(preds []HourlyPrediction) []GoldenHour {
	var windows []GoldenHour
	start := -1
	flush := func(end int) {
		if start >= 0 && len(windows) < maxGoldenHours {
			windows = append(windows, GoldenHour{Start: start, End: end})
		}
		start = -1
	}
	for i, pr := range preds {
		if pr.Level == LevelLow {
			if start < 0 {
				start = pr.Hour
			}
			if i == len(preds)-1 {
				flush(pr.Hour)
			}
			continue
		}
		if start >= 0 {
			flush(preds[i-1].Hour)
		}
	}
	return windows
}

// CurrentPrediction picks the forecast entry for the present hour, falling
// back to the first entry when the hour is missing.
func (p *Predictor) CurrentPrediction(preds []HourlyPrediction) HourlyPrediction {
	if len(preds) == 0 {
		return HourlyPrediction{}
	}
	now := p.clock.Now().Hour()
	for _, pr := range preds {
		if pr.Hour == now {
			return pr
		}
	}
	return preds[0]
}

// Labels shown by low-detail consumers, keyed by crowd level.
var levelLabels = map[CrowdLevel]string{
	LevelLow:    "Usually quiet",
	LevelMedium: "Moderately busy",
	LevelHigh:   "Usually crowded",
}

// SimplePrediction returns the crowd level for the current hour together with
// its display label.
func (p *Predictor) SimplePrediction(station model.Station) (CrowdLevel, string) {
	level := Classify(p.HourlyOccupancy(p.clock.Now().Hour(), station))
	return level, levelLabels[level]
}
