// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/zapponejosh/calendrics-api/internal/calendrical"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Server settings
	Port int    // HTTP port to listen on
	Env  string // development, staging, production, test

	// Database
	DatabasePath string // Path to SQLite file holding computed Hijri years
	CacheEnabled bool   // Memoize astronomical Hijri years (and persist them)

	// Authentication
	APIKey string // API key for write endpoints in production

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text

	// Rate limiting, per client
	RateLimitRPS   float64
	RateLimitBurst int

	MetricsEnabled bool

	// Default observation point for the astronomy endpoints. The UTC
	// offset is in hours.
	ObserverLatitude  float64
	ObserverLongitude float64
	ObserverElevation float64
	ObserverUTCOffset float64
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Load reads configuration from environment variables.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	// No-op when there is no .env file.
	_ = godotenv.Load()

	mecca := calendrical.Mecca
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", EnvDevelopment),

		DatabasePath: getEnv("DATABASE_PATH", "./data/calendrics.db"),
		CacheEnabled: getEnvBool("CACHE_ENABLED", true),

		APIKey: getEnv("API_KEY", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),

		ObserverLatitude:  getEnvFloat("OBSERVER_LATITUDE", mecca.Latitude),
		ObserverLongitude: getEnvFloat("OBSERVER_LONGITUDE", mecca.Longitude),
		ObserverElevation: getEnvFloat("OBSERVER_ELEVATION", mecca.Elevation),
		ObserverUTCOffset: getEnvFloat("OBSERVER_UTC_OFFSET", mecca.UTCOffset*24),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction, EnvTest:
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production, test; got %q", c.Env))
	}

	if c.CacheEnabled && c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required when CACHE_ENABLED is set"))
	}

	if c.Env == EnvProduction && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required in production"))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if c.RateLimitRPS < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %v", c.RateLimitRPS))
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", c.RateLimitBurst))
	}

	if _, err := c.Observer(); err != nil {
		errs = append(errs, fmt.Errorf("OBSERVER: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Observer returns the configured default observation point.
func (c *Config) Observer() (calendrical.Location, error) {
	return calendrical.TryNewLocation(c.ObserverLatitude, c.ObserverLongitude, c.ObserverElevation, c.ObserverUTCOffset/24)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
