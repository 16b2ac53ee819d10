package config

import "time"

// Config holds runtime settings for the i-Stokvel CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, without a trailing slash.
//   - HTTPTimeout: per-request timeout for API calls.
//   - DatabasePath: SQLite file holding the locally persisted session.
type Config struct {
	APIBaseURL   string
	HTTPTimeout  time.Duration
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000"
	c.HTTPTimeout = 15 * time.Second
	c.DatabasePath = "istokvel.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), from a JSON file
// when one is named on the command line, and finally from command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
