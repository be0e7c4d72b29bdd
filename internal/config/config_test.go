package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Planner.DailyBudgetHours != DefaultBudgetHours {
		t.Fatalf("budget = %v, want %v", cfg.Planner.DailyBudgetHours, DefaultBudgetHours)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("theme = %q", cfg.Appearance.Theme)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	confDir := filepath.Join(dir, "tripdeck")
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `
[planner]
daily_budget_hours = 8.0
default_city = "Hanoi"

[appearance]
theme = "flexoki-light"
`
	if err := os.WriteFile(filepath.Join(confDir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Planner.DailyBudgetHours != 8.0 {
		t.Fatalf("budget = %v, want 8", cfg.Planner.DailyBudgetHours)
	}
	if cfg.Planner.DefaultCity != "Hanoi" {
		t.Fatalf("default city = %q", cfg.Planner.DefaultCity)
	}
	if cfg.Appearance.Theme != "flexoki-light" {
		t.Fatalf("theme = %q", cfg.Appearance.Theme)
	}
}

func TestLoad_NonPositiveBudgetFallsBack(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	confDir := filepath.Join(dir, "tripdeck")
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(confDir, "config.toml"), []byte("[planner]\ndaily_budget_hours = 0.0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Planner.DailyBudgetHours != DefaultBudgetHours {
		t.Fatalf("budget = %v, want default", cfg.Planner.DailyBudgetHours)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Planner.DailyBudgetHours = 12
	cfg.Planner.SeedFile = "/tmp/trip.toml"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file should exist after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Planner.DailyBudgetHours != 12 || loaded.Planner.SeedFile != "/tmp/trip.toml" {
		t.Fatalf("round trip lost data: %+v", loaded.Planner)
	}
}

func TestEnvOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Planner.SeedFile = "from-config.toml"

	t.Setenv("TRIPDECK_BUDGET_HOURS", "6.5")
	t.Setenv("TRIPDECK_SEED", "from-env.toml")
	t.Setenv("TRIPDECK_THEME", "flexoki-light")

	if got := BudgetHours(cfg); got != 6.5 {
		t.Fatalf("BudgetHours = %v, want 6.5", got)
	}
	if got := SeedFile(cfg); got != "from-env.toml" {
		t.Fatalf("SeedFile = %q", got)
	}
	if got := Theme(cfg); got != "flexoki-light" {
		t.Fatalf("Theme = %q", got)
	}
}

func TestEnvOverrides_BadBudgetIgnored(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv("TRIPDECK_BUDGET_HOURS", "plenty")
	if got := BudgetHours(cfg); got != DefaultBudgetHours {
		t.Fatalf("BudgetHours = %v, want default for unparseable env", got)
	}

	t.Setenv("TRIPDECK_BUDGET_HOURS", "-3")
	if got := BudgetHours(cfg); got != DefaultBudgetHours {
		t.Fatalf("BudgetHours = %v, want default for non-positive env", got)
	}
}
