package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Environment
	Environment string

	// Display
	CurrencySymbol string

	// Exports
	ExportDir string

	// Calculation defaults
	DefaultFirstPaymentOffsetDays int

	// Sentry
	SentryDSN string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Environment:                   getEnv("ENVIRONMENT", "development"),
		CurrencySymbol:                getEnv("CURRENCY_SYMBOL", "$"),
		ExportDir:                     getEnv("EXPORT_DIR", "./exports"),
		DefaultFirstPaymentOffsetDays: getEnvAsInt("DEFAULT_FIRST_PAYMENT_OFFSET_DAYS", 30),
		SentryDSN:                     getEnv("SENTRY_DSN", ""),
	}

	return cfg, nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
