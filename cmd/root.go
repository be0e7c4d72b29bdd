package cmd

import (
	"fmt"
	"os"

	"tripdeck/internal/config"
	"tripdeck/internal/itinerary"
	"tripdeck/internal/seed"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagSeed   string
	flagBudget float64
	flagCity   string
)

var rootCmd = &cobra.Command{
	Use:   "tripdeck",
	Short: "Terminal trip planner",
	Long:  "Plan a multi-city trip from your terminal: route, day schedules, activity catalog, and a daily time budget.",
	RunE:  runRoute,
}

// Execute is the main entry point called from main.go.
func Execute() {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagSeed, "seed", "s", "", "Seed file (TOML) to load the trip from")
	rootCmd.PersistentFlags().Float64VarP(&flagBudget, "budget", "b", 0, "Daily time budget in hours (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagCity, "city", "c", "", "Focus on one city stop")
}

// loadStore is the shared startup path used by all commands: config, then
// seed, then a fresh in-memory store. Precedence for each knob is flag,
// env, config file, default.
func loadStore() (*itinerary.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	budget := flagBudget
	if budget <= 0 {
		budget = config.BudgetHours(cfg)
	}

	seedPath := flagSeed
	if seedPath == "" {
		seedPath = config.SeedFile(cfg)
	}

	sd := seed.Default()
	if seedPath != "" {
		sd, err = seed.FromFile(seedPath)
		if err != nil {
			return nil, cfg, fmt.Errorf("loading seed: %w", err)
		}
	}

	return itinerary.New(sd.Stops, sd.Activities, budget), cfg, nil
}

// focusCity resolves which city to operate on: --city flag, then the
// configured default, then the route's first stop.
func focusCity(cfg config.Config, store *itinerary.Store) string {
	if flagCity != "" {
		return flagCity
	}
	if cfg.Planner.DefaultCity != "" {
		return cfg.Planner.DefaultCity
	}
	if stops := store.Stops(); len(stops) > 0 {
		return stops[0].Name
	}
	return ""
}
