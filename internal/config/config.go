package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the service reads from the environment. There is
// no database and no external backend yet, so it stays small.
type Config struct {
	App struct {
		Port     string
		LogLevel string
	}
	Submit struct {
		// Delay is the simulated submission backend latency.
		Delay time.Duration
	}
}

// Load reads configuration from the environment, optionally loading a .env
// file first. Every value has a default.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}
	cfg.App.Port = os.Getenv("APP_PORT")
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	cfg.App.LogLevel = os.Getenv("LOG_LEVEL")
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "debug"
	}

	cfg.Submit.Delay = 1500 * time.Millisecond
	if raw := os.Getenv("SUBMIT_DELAY"); raw != "" {
		delay, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SUBMIT_DELAY %q: %w", raw, err)
		}
		cfg.Submit.Delay = delay
	}

	return cfg, nil
}
