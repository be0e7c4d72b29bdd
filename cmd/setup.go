package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"tripdeck/internal/config"
	"tripdeck/internal/seed"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to tripdeck!")
	fmt.Println()

	// 1. Daily budget
	fmt.Println("  1. Daily time budget")
	fmt.Println("     How many hours of activities per day before a day counts as full.")
	fmt.Printf("     Current: %.1fh\n", cfg.Planner.DailyBudgetHours)
	fmt.Print("     > ")
	budgetInput, _ := reader.ReadString('\n')
	budgetInput = strings.TrimSpace(budgetInput)
	if budgetInput != "" {
		if hours, err := strconv.ParseFloat(budgetInput, 64); err == nil && hours > 0 {
			cfg.Planner.DailyBudgetHours = hours
		} else {
			fmt.Println("     Not a positive number, keeping current value.")
		}
	}
	fmt.Println()

	// 2. Seed file
	fmt.Println("  2. Seed file")
	fmt.Println("     TOML file with your stops and activities. Empty uses the built-in sample trip.")
	if cfg.Planner.SeedFile != "" {
		fmt.Printf("     Current: %s\n", cfg.Planner.SeedFile)
	}
	fmt.Print("     > ")
	seedInput, _ := reader.ReadString('\n')
	seedInput = strings.TrimSpace(seedInput)
	if seedInput != "" {
		if _, err := seed.FromFile(seedInput); err != nil {
			fmt.Printf("     Warning: %v\n", err)
		}
		cfg.Planner.SeedFile = seedInput
	}
	fmt.Println()

	// 3. Default city
	fmt.Println("  3. Default city")
	fmt.Println("     City commands focus on when --city is not given. Empty means the first stop.")
	if cfg.Planner.DefaultCity != "" {
		fmt.Printf("     Current: %s\n", cfg.Planner.DefaultCity)
	}
	fmt.Print("     > ")
	cityInput, _ := reader.ReadString('\n')
	cfg.Planner.DefaultCity = strings.TrimSpace(cityInput)
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `tripdeck setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
