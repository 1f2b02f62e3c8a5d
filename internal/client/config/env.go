package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvAPIBaseURL     = "BILLBREAK_API_URL"
	EnvRequestTimeout = "BILLBREAK_REQUEST_TIMEOUT"
	EnvDatabasePath   = "BILLBREAK_DB_PATH"
	EnvEnvironment    = "BILLBREAK_ENV"
)

// loadDotEnv copies variables from path into the process environment.
// Variables that are already set win over the file.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil {
		_ = err // a missing .env is normal outside development
	}
}

// parseEnv overlays cfg with the BILLBREAK_* environment variables.
// BILLBREAK_REQUEST_TIMEOUT takes a Go duration ("15s").
func parseEnv(cfg *Config) error {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(EnvEnvironment); v != "" {
		cfg.Environment = v
	}
	return nil
}
