package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is specified in seconds.
type JsonConfig struct {
	APIBaseURL   string `json:"api_base_url"`
	HTTPTimeout  int    `json:"http_timeout"`
	DatabasePath string `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file named via
// the -c or -config flag. Absent flag means no JSON is loaded. Read or
// unmarshal errors panic; configuration is resolved once at startup and a
// broken file should stop the program.
//
// Zero-valued fields in the file leave the corresponding Config fields
// untouched, so a file can override just one setting.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.HTTPTimeout > 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
