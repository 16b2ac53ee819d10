package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5000", c.APIBaseURL)
	assert.Equal(t, 15*time.Second, c.HTTPTimeout)
	assert.Equal(t, "istokvel.db", c.DatabasePath)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("ISTOKVEL_API_BASE_URL", "https://api.example.test")
	t.Setenv("ISTOKVEL_HTTP_TIMEOUT", "30")
	t.Setenv("ISTOKVEL_DB_PATH", "/tmp/session.db")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://api.example.test", c.APIBaseURL)
	assert.Equal(t, 30*time.Second, c.HTTPTimeout)
	assert.Equal(t, "/tmp/session.db", c.DatabasePath)
}

func TestParseEnv_IgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("ISTOKVEL_HTTP_TIMEOUT", "not-a-number")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 15*time.Second, c.HTTPTimeout)
}

func TestJsonConfig_PartialOverride(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.json")
	data, err := json.Marshal(JsonConfig{APIBaseURL: "https://api.example.test"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, data, 0o600))

	origArgs := os.Args
	os.Args = []string{"istokvel", "-c", file}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://api.example.test", c.APIBaseURL)
	assert.Equal(t, 15*time.Second, c.HTTPTimeout, "unset JSON field keeps the default")
	assert.Equal(t, "istokvel.db", c.DatabasePath)
}

func TestJsonConfig_FullOverride(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.json")
	data, err := json.Marshal(JsonConfig{
		APIBaseURL:   "https://api.example.test",
		HTTPTimeout:  60,
		DatabasePath: "/data/s.db",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, data, 0o600))

	origArgs := os.Args
	os.Args = []string{"istokvel", "-config", file}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://api.example.test", c.APIBaseURL)
	assert.Equal(t, 60*time.Second, c.HTTPTimeout)
	assert.Equal(t, "/data/s.db", c.DatabasePath)
}
