package config

import (
	"fmt"
	"time"
)

const (
	DefaultAPIBaseURL     = "http://localhost:8080/api/v1"
	DefaultRequestTimeout = 10 * time.Second
	DefaultDatabasePath   = "billbreak.db"
	DefaultEnvironment    = "development"
)

// Config holds runtime settings for the BillBreak client.
//
// Fields:
//   - APIBaseURL: root of the backend REST API, without a trailing slash.
//   - RequestTimeout: per-request deadline of the HTTP client.
//   - DatabasePath: SQLite file holding the persisted session.
//   - Environment: "production" switches logging to JSON at INFO.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	Environment    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.RequestTimeout = DefaultRequestTimeout
	c.DatabasePath = DefaultDatabasePath
	c.Environment = DefaultEnvironment
}

// LoadConfig builds a Config from defaults, the .env file in the working
// directory, environment variables, an optional JSON file and finally the
// command-line flags in args. Later sources take precedence.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	loadDotEnv(".env")

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the client cannot start with.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api base url is empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path is empty")
	}
	return nil
}
