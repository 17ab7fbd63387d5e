package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	// Environment
	Environment string
	Port        string

	// Settings storage
	// When DatabaseURL is empty, settings are kept in a YAML file at SettingsFile
	DatabaseURL  string
	SettingsFile string

	// Fretboard rendering
	DefaultFretCount   int // Frets above the open string when a request does not specify
	FretboardCacheSize int // Built fretboards kept per (tuning, fret count)

	// Observability
	SentryDSN string // Sentry DSN for error tracking

	// Auth mode
	// - "none": No auth (self-hosted, local dev), every request owns the "anonymous" settings
	// - "gateway": Trust X-User-* headers from the upstream gateway
	AuthMode string
}

const (
	defaultFretCount   = 24
	defaultCacheSize   = 64
	defaultSettingFile = "settings.yaml"
)

func Load() *Config {
	return &Config{
		Environment:        getEnv("ENVIRONMENT", "development"),
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		SettingsFile:       getEnv("SETTINGS_FILE", defaultSettingFile),
		DefaultFretCount:   getEnvInt("DEFAULT_FRET_COUNT", defaultFretCount),
		FretboardCacheSize: getEnvInt("FRETBOARD_CACHE_SIZE", defaultCacheSize),
		SentryDSN:          getEnv("SENTRY_DSN", ""),
		AuthMode:           getEnv("AUTH_MODE", "none"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return defaultValue
	}
	return parsed
}

// IsGatewayMode returns true if running behind the auth gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}

// UsesDatabase reports whether settings are stored in Postgres
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}
