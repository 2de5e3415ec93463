package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataSource.Provider != "stooq" {
		t.Errorf("provider = %q, want stooq", cfg.DataSource.Provider)
	}
	if len(cfg.Tickers) == 0 {
		t.Error("default ticker list should not be empty")
	}
	if cfg.Data.HistoryDays != 365 {
		t.Errorf("history_days = %d, want 365", cfg.Data.HistoryDays)
	}
	if cfg.Forecast.HorizonDays != 30 {
		t.Errorf("horizon_days = %d, want 30", cfg.Forecast.HorizonDays)
	}
	if cfg.Forecast.MinObservations != 2 {
		t.Errorf("min_observations = %d, want 2", cfg.Forecast.MinObservations)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
tickers: [NVDA, AMD]
data_source:
  provider: mock
data:
  history_days: 120
forecast:
  horizon_days: 10
  min_observations: 20
output:
  dir: /tmp/reports
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Tickers) != 2 || cfg.Tickers[0] != "NVDA" {
		t.Errorf("tickers = %v", cfg.Tickers)
	}
	if cfg.DataSource.Provider != "mock" {
		t.Errorf("provider = %q, want mock", cfg.DataSource.Provider)
	}
	if cfg.Data.HistoryDays != 120 {
		t.Errorf("history_days = %d, want 120", cfg.Data.HistoryDays)
	}
	if cfg.Forecast.HorizonDays != 10 {
		t.Errorf("horizon_days = %d, want 10", cfg.Forecast.HorizonDays)
	}
	if cfg.Output.Dir != "/tmp/reports" {
		t.Errorf("output dir = %q", cfg.Output.Dir)
	}
	// Untouched fields still get defaults.
	if cfg.Database.SQLitePath == "" {
		t.Error("sqlite path default missing")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TICKERS", " nvda , amd ,")
	t.Setenv("DATA_PROVIDER", "mock")
	t.Setenv("HORIZON_DAYS", "7")
	t.Setenv("HISTORY_DAYS", "not-a-number")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Tickers) != 2 || cfg.Tickers[0] != "NVDA" || cfg.Tickers[1] != "AMD" {
		t.Errorf("tickers = %v, want [NVDA AMD]", cfg.Tickers)
	}
	if cfg.DataSource.Provider != "mock" {
		t.Errorf("provider = %q, want mock", cfg.DataSource.Provider)
	}
	if cfg.Forecast.HorizonDays != 7 {
		t.Errorf("horizon_days = %d, want 7", cfg.Forecast.HorizonDays)
	}
	// Bad numeric env falls back to the default.
	if cfg.Data.HistoryDays != 365 {
		t.Errorf("history_days = %d, want 365", cfg.Data.HistoryDays)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\nnot yaml {{{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestValidate_Errors(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		return cfg
	}

	cfg := base()
	cfg.DataSource.Provider = "bloomberg"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}

	cfg = base()
	cfg.DataSource.Provider = "alpaca"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for alpaca without credentials")
	}
	cfg.DataSource.APIKey = "key"
	cfg.DataSource.APISecret = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("alpaca with credentials should validate: %v", err)
	}

	cfg = base()
	cfg.Tickers = nil
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty tickers")
	}

	cfg = base()
	cfg.Forecast.HorizonDays = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative horizon")
	}

	cfg = base()
	cfg.Forecast.MinObservations = 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for min_observations below 2")
	}

	cfg = base()
	cfg.Data.HistoryDays = 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for history_days below 2")
	}
}
