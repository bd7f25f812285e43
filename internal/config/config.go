package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultGistempURL is the published location of the GISTEMP v4 global
// land-ocean anomaly table.
const DefaultGistempURL = "https://data.giss.nasa.gov/gistemp/tabledata_v4/GLB.Ts+dSST.csv"

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// Upstream GISTEMP fetch.
	GistempURL   string        `envconfig:"GISTEMP_URL"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`
	CacheTTL     time.Duration `envconfig:"CACHE_TTL" default:"1h"`

	// Statistic parameters.
	RollingWindow     int   `envconfig:"ROLLING_WINDOW" default:"120"`
	RollingMinPeriods int   `envconfig:"ROLLING_MIN_PERIODS" default:"30"`
	TrendYears        int   `envconfig:"TREND_YEARS" default:"10"`
	PredictionYears   []int `envconfig:"PREDICTION_YEARS" default:"2030,2050"`
}

// Load reads configuration from the environment (and an optional .env file),
// applying defaults where unset.
func Load() (*Config, error) {
	// Best-effort .env loading for local development; absence is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.GistempURL == "" {
		cfg.GistempURL = DefaultGistempURL
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR is required")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.FetchTimeout <= 0 {
		return errors.New("FETCH_TIMEOUT must be positive")
	}
	if c.CacheTTL <= 0 {
		return errors.New("CACHE_TTL must be positive")
	}
	if c.RollingWindow < 1 {
		return errors.New("ROLLING_WINDOW must be at least 1")
	}
	if c.RollingMinPeriods < 1 || c.RollingMinPeriods > c.RollingWindow {
		return errors.New("ROLLING_MIN_PERIODS must be between 1 and ROLLING_WINDOW")
	}
	if c.TrendYears < 1 {
		return errors.New("TREND_YEARS must be at least 1")
	}
	if len(c.PredictionYears) == 0 {
		return errors.New("PREDICTION_YEARS must name at least one target year")
	}
	return nil
}
