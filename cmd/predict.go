package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/evnav/chargescout/core/occupancy"
	"github.com/evnav/chargescout/infra/fleet"
	"github.com/evnav/chargescout/infra/logger"
	"github.com/evnav/chargescout/internal/clock"
)

var predictFlags struct {
	stationsPath string
	bookingsPath string
	stationID    string
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Forecast hourly crowd levels for a station",
	RunE:  runPredict,
}

func init() {
	f := predictCmd.Flags()
	f.StringVar(&predictFlags.stationsPath, "stations", "stations.json", "station fixture file")
	f.StringVar(&predictFlags.bookingsPath, "bookings", "", "optional booking fixture file")
	f.StringVar(&predictFlags.stationID, "station", "", "station id to forecast")
	_ = predictCmd.MarkFlagRequired("station")
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logg := logger.New("predict-command", cfg.Logging.Level)
	requestID := uuid.NewString()

	stations, err := fleet.LoadStations(predictFlags.stationsPath)
	if err != nil {
		return err
	}
	bookings, err := fleet.LoadBookings(predictFlags.bookingsPath)
	if err != nil {
		return err
	}

	idx := -1
	for i, st := range stations {
		if st.ID == predictFlags.stationID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("station %s not found in %s", predictFlags.stationID, predictFlags.stationsPath)
	}
	station := stations[idx]

	predictor := occupancy.New(cfg.Occupancy, clock.Real{}, nil, logg)
	preds := predictor.HourlyPredictions(station, bookings)
	logg.Infof("request %s: forecast for station %s", requestID, station.ID)

	fmt.Printf("Forecast for %s\n", station.Name)
	for _, p := range preds {
		fmt.Printf("%02d:00  %-6s  wait ~%2d min  confidence %d%%\n",
			p.Hour, p.Level, p.EstimatedWaitMin, p.Confidence)
	}

	current := predictor.CurrentPrediction(preds)
	fmt.Printf("\nRight now: %s, ~%d min wait\n", current.Level, current.EstimatedWaitMin)

	golden := occupancy.GoldenHours(preds)
	if len(golden) == 0 {
		fmt.Println("No quiet windows expected today.")
		return nil
	}
	fmt.Println("Quiet windows:")
	for _, g := range golden {
		fmt.Printf("  %02d:00 - %02d:59\n", g.Start, g.End)
	}
	return nil
}
