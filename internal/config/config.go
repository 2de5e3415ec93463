package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Tickers    []string `yaml:"tickers"`
	DataSource struct {
		Provider  string `yaml:"provider"` // stooq, alpaca or mock
		BaseURL   string `yaml:"base_url"`
		Suffix    string `yaml:"symbol_suffix"`
		APIKey    string `yaml:"api_key"`
		APISecret string `yaml:"api_secret"`
	} `yaml:"data_source"`
	Data struct {
		Dir         string `yaml:"dir"`
		HistoryDays int    `yaml:"history_days"`
		MaxRetries  int    `yaml:"max_retries"`
	} `yaml:"data"`
	Forecast struct {
		HorizonDays     int `yaml:"horizon_days"`
		MinObservations int `yaml:"min_observations"`
	} `yaml:"forecast"`
	Output struct {
		Dir       string `yaml:"dir"`
		StateFile string `yaml:"state_file"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TICKERS"); v != "" {
		cfg.Tickers = splitTickers(v)
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("STOOQ_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("ALPACA_API_SECRET"); v != "" {
		cfg.DataSource.APISecret = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("HISTORY_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Data.HistoryDays = n
		}
	}
	if v := os.Getenv("HORIZON_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Forecast.HorizonDays = n
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Tickers) == 0 {
		cfg.Tickers = []string{"AAPL", "MSFT", "SPY"}
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "stooq"
	}
	if cfg.DataSource.Suffix == "" {
		cfg.DataSource.Suffix = ".us"
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data/prices"
	}
	if cfg.Data.HistoryDays == 0 {
		cfg.Data.HistoryDays = 365
	}
	if cfg.Data.MaxRetries == 0 {
		cfg.Data.MaxRetries = 2
	}
	if cfg.Forecast.HorizonDays == 0 {
		cfg.Forecast.HorizonDays = 30
	}
	if cfg.Forecast.MinObservations == 0 {
		cfg.Forecast.MinObservations = 2
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "out"
	}
	if cfg.Output.StateFile == "" {
		cfg.Output.StateFile = "out/models.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/trendcast.db"
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 23 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers must not be empty")
	}
	switch c.DataSource.Provider {
	case "stooq", "mock":
	case "alpaca":
		if c.DataSource.APIKey == "" || c.DataSource.APISecret == "" {
			return fmt.Errorf("data_source.api_key and api_secret are required for alpaca")
		}
	default:
		return fmt.Errorf("unknown data_source.provider %q", c.DataSource.Provider)
	}
	if c.Data.HistoryDays < 2 {
		return fmt.Errorf("data.history_days must be at least 2")
	}
	if c.Forecast.HorizonDays < 1 {
		return fmt.Errorf("forecast.horizon_days must be positive")
	}
	if c.Forecast.MinObservations < 2 {
		return fmt.Errorf("forecast.min_observations must be at least 2")
	}
	return nil
}

func splitTickers(s string) []string {
	var tickers []string
	for _, t := range strings.Split(s, ",") {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}
