package config

import "os"

// Config holds the application configuration
// Note: This is a stateless configuration - the generator keeps nothing on
// disk and needs no database; everything is derived from the environment.
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN string // Sentry DSN for error tracking

	// Output
	OutputDir string // Where batch exports land
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		SentryDSN:   getEnv("SENTRY_DSN", ""),
		OutputDir:   getEnv("OUTPUT_DIR", "generated/generated_drums"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// IsProduction reports whether the server runs in release mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
