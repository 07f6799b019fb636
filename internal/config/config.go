// Package config loads application configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all application configuration.
type Config struct {
	Port               string
	Env                string
	LogLevel           zerolog.Level
	GoogleMapsKey      string
	GoogleMapsURL      string
	ProviderTimeout    time.Duration
	Location           *time.Location
	OTelEnabled        bool
	OTLPEndpoint       string
	OTelSampleRatio    float64       // OTEL_TRACES_SAMPLER_ARG; 0 keeps every trace
	OTelMetricInterval time.Duration // OTEL_METRIC_EXPORT_INTERVAL, in milliseconds
	RequireTLS         bool
}

// jst is used when the tz database is unavailable.
var jst = time.FixedZone("JST", 9*60*60)

// Load reads an optional .env file from the working directory, then the
// environment. Variables already set take precedence over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv(), nil
}

// FromEnv reads configuration from environment variables with defaults.
func FromEnv() *Config {
	return &Config{
		Port:               getEnv("APP_PORT", "8080"),
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getLevelEnv("LOG_LEVEL", zerolog.InfoLevel),
		GoogleMapsKey:      strings.TrimSpace(os.Getenv("GOOGLE_MAPS_API_KEY")),
		GoogleMapsURL:      getEnv("GOOGLE_MAPS_BASE_URL", "https://maps.googleapis.com"),
		ProviderTimeout:    getDurationEnv("PROVIDER_TIMEOUT_SECONDS", 10) * time.Second,
		Location:           getLocationEnv("APP_TIMEZONE", "Asia/Tokyo"),
		OTelEnabled:        getBoolEnv("OTEL_ENABLED", false),
		OTLPEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		OTelSampleRatio:    getFloatEnv("OTEL_TRACES_SAMPLER_ARG", 0),
		OTelMetricInterval: time.Duration(getIntEnv("OTEL_METRIC_EXPORT_INTERVAL", 0)) * time.Millisecond,
		RequireTLS:         getBoolEnv("REQUIRE_TLS", false),
	}
}

// HasAPIKey reports whether a provider credential is configured. It is the
// only switch between live and demo mode.
func (c *Config) HasAPIKey() bool {
	return c.GoogleMapsKey != ""
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds)
		}
	}
	return time.Duration(defaultSeconds)
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getLevelEnv(key string, defaultLevel zerolog.Level) zerolog.Level {
	if value := os.Getenv(key); value != "" {
		if level, err := zerolog.ParseLevel(strings.ToLower(value)); err == nil && level != zerolog.NoLevel {
			return level
		}
	}
	return defaultLevel
}

func getLocationEnv(key, defaultName string) *time.Location {
	name := getEnv(key, defaultName)
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return jst
}
