package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first when present; a missing file is not
// an error, the process environment is used as-is.
//
// Recognized variables:
//
//	ADDRESS         HTTP bind address (e.g., ":8080")
//	DATABASE_DSN    PostgreSQL DSN
//	SESSION_SECRET  session cookie HMAC secret
//	ENVIRONMENT     "development" or "production"
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		config.SessionSecret = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		config.Environment = v
	}
}
