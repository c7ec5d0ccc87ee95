// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// Config holds all configuration values shared by the CLI, the API server
// and the import command. Values are populated by Load from environment variables.
type Config struct {
	// DataDir is the directory holding the city CSV files. Defaults to ".".
	DataDir string

	// CitiesFile is an optional YAML file overriding the built-in city table.
	CitiesFile string

	// Cities maps city names to their CSV files. Loaded from CitiesFile when
	// set, otherwise domain.DefaultCities.
	Cities domain.CityTable

	// PageSize is the number of raw records shown per page. Defaults to 5.
	PageSize int

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// DatabaseURL is the Postgres connection string. Optional: when set,
	// datasets are read from Postgres instead of CSV files.
	DatabaseURL string

	// ChartDir enables HTML chart output to this directory when set.
	ChartDir string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing every variable that holds an invalid value.
func Load() (Config, error) {
	cfg := Config{
		DataDir:     getEnv("DATA_DIR", "."),
		CitiesFile:  os.Getenv("CITIES_FILE"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ChartDir:    os.Getenv("CHART_DIR"),
	}

	var invalid []string

	size, err := strconv.Atoi(getEnv("PAGE_SIZE", "5"))
	if err != nil || size < 1 {
		invalid = append(invalid, "PAGE_SIZE")
	}
	cfg.PageSize = size

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		invalid = append(invalid, "LOG_LEVEL")
	}

	cfg.Cities = domain.DefaultCities()
	if cfg.CitiesFile != "" {
		cities, err := LoadCities(cfg.CitiesFile)
		if err != nil {
			return Config{}, fmt.Errorf("CITIES_FILE: %w", err)
		}
		cfg.Cities = cities
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// RequireDatabase returns an error naming DATABASE_URL when it is not set.
func (c Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("required environment variables not set: DATABASE_URL")
	}
	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
