// Package config provides application configuration through environment variables
// and the security settings file.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// DefaultSettingsFile is the settings file used when FIBROHASH_CONFIG_FILE is unset.
const DefaultSettingsFile = "fibrohash_config.json"

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// SettingsFile is the path of the security settings file.
	SettingsFile string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsFile is where metrics are written in text exposition format on shutdown.
	// Empty disables the file.
	MetricsFile string

	// MaxConcurrentGenerations bounds the passwords generated in parallel by one command.
	MaxConcurrentGenerations int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Security settings
		SettingsFile: env.GetString("FIBROHASH_CONFIG_FILE", DefaultSettingsFile),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "fibrohash"),
		MetricsFile:      env.GetString("METRICS_FILE", ""),

		// Performance
		MaxConcurrentGenerations: env.GetInt("MAX_CONCURRENT_GENERATIONS", 10),
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
