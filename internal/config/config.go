// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	customValidation "github.com/allisson/sealfield/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	// MasterKey is the standard base64 master key. When KMSKeyURI is set it holds
	// the KMS ciphertext of the master key instead.
	MasterKey string
	// KMSKeyURI is the URI of the KMS key wrapping MasterKey (e.g., "base64key://...", "hashivault://...").
	KMSKeyURI string

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Master key
		MasterKey: env.GetString("MASTER_KEY", ""),
		KMSKeyURI: env.GetString("KMS_KEY_URI", ""),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "sealfield"),
	}
}

// Validate checks the configuration needed to seal and unseal values.
// Failures wrap ErrInvalidInput.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.MasterKey,
			validation.Required.Error("MASTER_KEY is required"),
			customValidation.Base64,
		),
		validation.Field(&c.KMSKeyURI,
			customValidation.KeyURI,
		),
		validation.Field(&c.LogLevel,
			validation.In("debug", "info", "warn", "error").Error("LOG_LEVEL must be one of debug, info, warn, error"),
		),
		validation.Field(&c.MetricsNamespace,
			validation.When(
				c.MetricsEnabled,
				validation.Required.Error("METRICS_NAMESPACE is required when metrics are enabled"),
			),
		),
	)
	return customValidation.WrapValidationError(err)
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
			break
		}
		dir = parent
	}
}
