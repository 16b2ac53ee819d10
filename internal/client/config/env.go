package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first when present; real
// environment variables win over the file.
//
// Recognized variables:
//
//	ISTOKVEL_API_BASE_URL   base URL of the backend REST API
//	ISTOKVEL_HTTP_TIMEOUT   per-request timeout, in seconds
//	ISTOKVEL_DB_PATH        path of the local session database
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ISTOKVEL_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("ISTOKVEL_HTTP_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("ISTOKVEL_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
}
