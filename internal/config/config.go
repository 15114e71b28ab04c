package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr      string  `yaml:"addr" envconfig:"SERVER_ADDR"`
		RateLimit float64 `yaml:"rate_limit" envconfig:"SERVER_RATE_LIMIT"`
		Burst     int     `yaml:"burst" envconfig:"SERVER_BURST"`
	} `yaml:"server"`
	DataSource struct {
		BaseURL        string `yaml:"base_url" envconfig:"RAW_DATA_URL"`
		APIKey         string `yaml:"api_key" envconfig:"RAW_DATA_API_KEY"`
		File           string `yaml:"file" envconfig:"RAW_DATA_FILE"`
		SyntheticCount int    `yaml:"synthetic_count" envconfig:"SYNTHETIC_COUNT"`
	} `yaml:"data_source"`
	Chart struct {
		Instrument string  `yaml:"instrument" envconfig:"CHART_INSTRUMENT"`
		MAWindows  []int   `yaml:"ma_windows" envconfig:"CHART_MA_WINDOWS"`
		ZoomStart  float64 `yaml:"zoom_start" envconfig:"CHART_ZOOM_START"`
		ZoomEnd    float64 `yaml:"zoom_end" envconfig:"CHART_ZOOM_END"`
	} `yaml:"chart"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron" envconfig:"REFRESH_CRON"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path" envconfig:"SQLITE_PATH"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level" envconfig:"LOG_LEVEL"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy" envconfig:"HTTPS_PROXY"`
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides, then defaults. A missing file or .env is not an error.
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

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	// Fields without a matching variable keep their YAML value.
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.RateLimit == 0 {
		cfg.Server.RateLimit = 20
	}
	if cfg.Server.Burst == 0 {
		cfg.Server.Burst = 40
	}
	if cfg.DataSource.SyntheticCount == 0 {
		cfg.DataSource.SyntheticCount = 200
	}
	if cfg.Chart.Instrument == "" {
		cfg.Chart.Instrument = "Dow-Jones index"
	}
	if len(cfg.Chart.MAWindows) == 0 {
		cfg.Chart.MAWindows = []int{5, 10, 20, 30}
	}
	if cfg.Chart.ZoomStart == 0 && cfg.Chart.ZoomEnd == 0 {
		cfg.Chart.ZoomStart = 98
		cfg.Chart.ZoomEnd = 100
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 */5 * * * *"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("server.rate_limit must be positive")
	}
	if c.Server.Burst <= 0 {
		return fmt.Errorf("server.burst must be positive")
	}
	if c.DataSource.SyntheticCount <= 0 {
		return fmt.Errorf("data_source.synthetic_count must be positive")
	}
	for _, w := range c.Chart.MAWindows {
		if w <= 0 {
			return fmt.Errorf("chart.ma_windows: window %d must be positive", w)
		}
	}
	if c.Chart.ZoomStart < 0 || c.Chart.ZoomEnd > 100 || c.Chart.ZoomStart >= c.Chart.ZoomEnd {
		return fmt.Errorf("chart zoom range must satisfy 0 <= zoom_start < zoom_end <= 100")
	}
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.Schedule.RefreshCron); err != nil {
		return fmt.Errorf("schedule.refresh_cron: %w", err)
	}
	return nil
}

// SourceKind names the raw data source implied by the config.
func (c *Config) SourceKind() string {
	switch {
	case c.DataSource.BaseURL != "":
		return "http"
	case c.DataSource.File != "":
		return "file"
	default:
		return "synthetic"
	}
}
