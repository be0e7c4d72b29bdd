package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// DefaultBudgetHours is the daily time budget assumed when nothing is
// configured.
const DefaultBudgetHours = 10.0

// Config holds all tripdeck configuration.
type Config struct {
	Planner    PlannerConfig    `toml:"planner"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// PlannerConfig holds planning preferences.
type PlannerConfig struct {
	DailyBudgetHours float64 `toml:"daily_budget_hours"`
	DefaultCity      string  `toml:"default_city,omitempty"`
	SeedFile         string  `toml:"seed_file,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Planner: PlannerConfig{
			DailyBudgetHours: DefaultBudgetHours,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tripdeck")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tripdeck")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A non-positive budget in the file falls back to the default.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Planner.DailyBudgetHours <= 0 {
		cfg.Planner.DailyBudgetHours = DefaultBudgetHours
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// BudgetHours returns the daily budget from TRIPDECK_BUDGET_HOURS or the
// config, in that order. Unparseable or non-positive env values are ignored.
func BudgetHours(cfg Config) float64 {
	if v := os.Getenv("TRIPDECK_BUDGET_HOURS"); v != "" {
		if hours, err := strconv.ParseFloat(v, 64); err == nil && hours > 0 {
			return hours
		}
	}
	return cfg.Planner.DailyBudgetHours
}

// SeedFile returns the seed file path from TRIPDECK_SEED or the config, in
// that order. Empty means use the built-in seed.
func SeedFile(cfg Config) string {
	if path := os.Getenv("TRIPDECK_SEED"); path != "" {
		return path
	}
	return cfg.Planner.SeedFile
}

// Theme returns the theme name from TRIPDECK_THEME or the config, in that
// order.
func Theme(cfg Config) string {
	if name := os.Getenv("TRIPDECK_THEME"); name != "" {
		return name
	}
	return cfg.Appearance.Theme
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
