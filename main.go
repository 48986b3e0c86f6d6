package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"coinhunt.klederson.com/internal/app"
	"coinhunt.klederson.com/internal/config"
	"coinhunt.klederson.com/internal/geo"
	"coinhunt.klederson.com/internal/hunt"
)

var (
	flagLat     float64
	flagLon     float64
	flagLimit   string
	flagSeed    int64
	flagNear    float64
	flagCollect float64
	flagHyst    float64
	flagRadius  float64
	flagVerbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coinhunt",
		Short: "Coin Hunt - terminal treasure hunt with a live proximity radar",
		Long: `Coin Hunt scatters virtual coins around a starting coordinate and
sends a simulated player wandering through the field. The radar shows
every coin at its true bearing and range; walk into collection range of
an unlocked coin and press SPACE to bank it.

Collection is gated by your find limit: coins valued above it stay
locked until the limit rises.`,
		RunE: run,
	}

	rootCmd.Flags().Float64Var(&flagLat, "lat", 41.3851, "Starting latitude")
	rootCmd.Flags().Float64Var(&flagLon, "lon", 2.1734, "Starting longitude")
	rootCmd.Flags().StringVar(&flagLimit, "find-limit", "10.00", "Starting find limit (max collectible coin value)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", time.Now().UnixNano(), "Seed for the coin field and walker")
	rootCmd.Flags().Float64Var(&flagNear, "near", config.NearDistance, "Near zone boundary in meters")
	rootCmd.Flags().Float64Var(&flagCollect, "collect", config.CollectDistance, "Collection zone boundary in meters")
	rootCmd.Flags().Float64Var(&flagHyst, "hysteresis", config.Hysteresis, "Zone exit margin in meters")
	rootCmd.Flags().Float64Var(&flagRadius, "radius", config.TrackingRadius, "Targeting radius in meters")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log engine diagnostics to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	start := geo.Point{Lat: flagLat, Lon: flagLon}
	if !start.Valid() {
		return fmt.Errorf("invalid starting coordinate (%v, %v)", flagLat, flagLon)
	}
	limit, err := decimal.NewFromString(flagLimit)
	if err != nil {
		return fmt.Errorf("invalid find limit %q: %w", flagLimit, err)
	}

	cfg := hunt.Config{
		TrackingRadius:  flagRadius,
		NearDistance:    flagNear,
		CollectDistance: flagCollect,
		Hysteresis:      flagHyst,
	}

	var logger *slog.Logger
	if flagVerbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	model, err := app.New(start, cfg, limit, flagSeed, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	// Start the simulated walker with a reference to the tea program.
	model.StartSim(p)

	_, err = p.Run()
	return err
}
