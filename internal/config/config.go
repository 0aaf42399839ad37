// Package config loads process-level configuration from the environment.
// Per-user settings live in the store; only machine-level overrides and
// the fallback API key come from here.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/logger"
)

type Config struct {
	// APIKey is the environment fallback weather API key.
	APIKey string
	// City overrides the stored city preference when set.
	City string
	// FetchInterval controls the periodic weather re-fetch in watch mode
	// and the TUI.
	FetchInterval time.Duration
	// Language for weather condition descriptions.
	Language string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	cfg := &Config{
		APIKey:        os.Getenv("DAYBOOK_API_KEY"),
		City:          os.Getenv("DAYBOOK_CITY"),
		FetchInterval: constants.WeatherWatchInterval,
		Language:      getenvDefault("DAYBOOK_WEATHER_LANG", constants.WeatherLanguage),
	}

	if v := os.Getenv("DAYBOOK_FETCH_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DAYBOOK_FETCH_INTERVAL: %w", err)
		}
		cfg.FetchInterval = interval
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
