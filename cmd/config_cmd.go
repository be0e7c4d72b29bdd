// Package cmd implements the tripdeck CLI commands.
package cmd

import (
	"fmt"

	"tripdeck/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Planner]")
	fmt.Printf("    Daily budget: %.1fh (effective %.1fh)\n",
		cfg.Planner.DailyBudgetHours, config.BudgetHours(cfg))
	if cfg.Planner.DefaultCity != "" {
		fmt.Printf("    Default city: %s\n", cfg.Planner.DefaultCity)
	} else {
		fmt.Println("    Default city: first stop on the route")
	}
	if seedFile := config.SeedFile(cfg); seedFile != "" {
		fmt.Printf("    Seed file:    %s\n", seedFile)
	} else {
		fmt.Println("    Seed file:    built-in sample trip")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", config.Theme(cfg))
	fmt.Println()

	fmt.Println("  Env overrides: TRIPDECK_BUDGET_HOURS, TRIPDECK_SEED, TRIPDECK_THEME")
	fmt.Println("  Run `tripdeck setup` to reconfigure.")
	return nil
}
