// Package config loads mazeview settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvMazefile         = "PENOMAZE_MAZEFILE"
	EnvTelemetry        = "PENOMAZE_TELEMETRY"
	EnvHoneycombAPIKey  = "PENOMAZE_HONEYCOMB_API_KEY"
	EnvHoneycombDataset = "PENOMAZE_HONEYCOMB_DATASET"
	EnvWallColor        = "PENOMAZE_WALL_COLOR"
	EnvAlertColor       = "PENOMAZE_ALERT_COLOR"
)

const (
	defaultDataset    = "penomaze"
	defaultWallColor  = "#A8A8A8"
	defaultAlertColor = "#FF3030"
	honeycombEndpoint = "https://api.honeycomb.io"
)

// Config holds mazeview configuration options.
type Config struct {
	Mazefile         string // Path of the mazefile to load when no flag is given
	Telemetry        bool   // Export traces over OTLP
	HoneycombAPIKey  string // Sent as x-honeycomb-team when set
	HoneycombDataset string // Sent as x-honeycomb-dataset
	WallColor        string // Hex colour of walls in the terminal viewer
	AlertColor       string // Hex colour of inconsistent tiles in the terminal viewer
}

// Load reads a .env file if one exists and builds the configuration from the
// environment. A missing .env file is not an error.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (Config, error) {
	telemetry, err := getEnvAsBool(EnvTelemetry, false)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Mazefile:         os.Getenv(EnvMazefile),
		Telemetry:        telemetry,
		HoneycombAPIKey:  os.Getenv(EnvHoneycombAPIKey),
		HoneycombDataset: getEnvWithDefault(EnvHoneycombDataset, defaultDataset),
		WallColor:        getEnvWithDefault(EnvWallColor, defaultWallColor),
		AlertColor:       getEnvWithDefault(EnvAlertColor, defaultAlertColor),
	}, nil
}

// TelemetryEndpoint returns the OTLP endpoint, empty when telemetry should use
// the standard OTEL_* variables.
func (c Config) TelemetryEndpoint() string {
	if c.HoneycombAPIKey == "" {
		return ""
	}
	return honeycombEndpoint
}

// TelemetryHeaders returns the export headers for Honeycomb, or nil without an API key.
func (c Config) TelemetryHeaders() map[string]string {
	if c.HoneycombAPIKey == "" {
		return nil
	}
	return map[string]string{
		"x-honeycomb-team":    c.HoneycombAPIKey,
		"x-honeycomb-dataset": c.HoneycombDataset,
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool parses a boolean environment variable, returning defaultValue if not set.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return b, nil
}
