// Package config loads runtime configuration for the BillBreak client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, loaded with godotenv. Variables
//     already present in the environment are not overwritten.
//  3. Environment variables BILLBREAK_API_URL, BILLBREAK_REQUEST_TIMEOUT,
//     BILLBREAK_DB_PATH and BILLBREAK_ENV.
//  4. Optional JSON file selected with -c or -config.
//  5. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   backend API base URL
//	-t int      request timeout (seconds)
//	-d string   local SQLite database path
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "10s" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "https://billbreak.example.com/api/v1",
//	  "request_timeout": "10s",
//	  "database_path": "/home/me/.billbreak/session.db",
//	  "environment": "production"
//	}
package config
