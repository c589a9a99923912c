package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/evnav/chargescout/core/recommend"
	"github.com/evnav/chargescout/infra/fleet"
	"github.com/evnav/chargescout/infra/logger"
)

var recommendFlags struct {
	stationsPath string
	vehiclePath  string
	lat          float64
	lng          float64
	destLat      float64
	destLng      float64
	destName     string
	mode         string
	limit        int
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank charging stations for a driver",
	RunE:  runRecommend,
}

func init() {
	f := recommendCmd.Flags()
	f.StringVar(&recommendFlags.stationsPath, "stations", "stations.json", "station fixture file")
	f.StringVar(&recommendFlags.vehiclePath, "vehicle", "vehicle.json", "vehicle fixture file")
	f.Float64Var(&recommendFlags.lat, "lat", 0, "driver latitude")
	f.Float64Var(&recommendFlags.lng, "lng", 0, "driver longitude")
	f.Float64Var(&recommendFlags.destLat, "dest-lat", 0, "destination latitude")
	f.Float64Var(&recommendFlags.destLng, "dest-lng", 0, "destination longitude")
	f.StringVar(&recommendFlags.destName, "dest-name", "", "destination name")
	f.StringVar(&recommendFlags.mode, "mode", string(recommend.ModeBalanced), "optimization mode")
	f.IntVar(&recommendFlags.limit, "limit", 0, "maximum results, 0 for all")
	_ = recommendCmd.MarkFlagRequired("lat")
	_ = recommendCmd.MarkFlagRequired("lng")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logg := logger.New("recommend-command", cfg.Logging.Level)
	requestID := uuid.NewString()

	stations, err := fleet.LoadStations(recommendFlags.stationsPath)
	if err != nil {
		return err
	}
	vehicle, err := fleet.LoadVehicle(recommendFlags.vehiclePath)
	if err != nil {
		return err
	}

	params := recommend.Params{
		UserLat:  recommendFlags.lat,
		UserLng:  recommendFlags.lng,
		Vehicle:  vehicle,
		Mode:     recommend.OptimizationMode(recommendFlags.mode),
		Stations: stations,
	}
	if cmd.Flags().Changed("dest-lat") && cmd.Flags().Changed("dest-lng") {
		params.Destination = &recommend.Destination{
			Lat:  recommendFlags.destLat,
			Lng:  recommendFlags.destLng,
			Name: recommendFlags.destName,
		}
	}

	scorer := recommend.NewScorer(cfg.Recommend, logg)
	var recs []recommend.Recommendation
	if recommendFlags.limit > 0 {
		recs = scorer.TopRecommendations(params, recommendFlags.limit)
	} else {
		recs = scorer.Recommendations(params)
	}
	logg.Infof("request %s: ranked %d of %d stations", requestID, len(recs), len(stations))

	for i, r := range recs {
		line := fmt.Sprintf("%2d. %-24s %3d%% match, %d min away", i+1, r.Station.Name, r.MatchPercent, r.TravelTimeMin)
		if r.DetourKm != nil {
			line += fmt.Sprintf(", %.1f km detour", *r.DetourKm)
		}
		fmt.Println(line)
		for _, reason := range r.Reasons {
			text := reason.Text
			if reason.Value != "" {
				text += " (" + reason.Value + ")"
			}
			fmt.Println(strings.Repeat(" ", 4) + "- " + text)
		}
	}
	return nil
}
