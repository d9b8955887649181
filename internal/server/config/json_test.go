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

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr":             "www.example:9000",
		"database_dsn":              "postgres://example/tracker",
		"session_secret":            "my_secret_key",
		"session_validity_duration": "168h",
		"environment":               "production",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddr)
		assert.Equal(t, "postgres://example/tracker", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SessionSecret)
		assert.Equal(t, 168*time.Hour, cfg.SessionValidityDuration)
		assert.Equal(t, "production", cfg.Environment)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			EndpointAddr:            "defaults:1234",
			DatabaseDSN:             "postgres://defaults/db",
			SessionSecret:           "key",
			SessionValidityDuration: 24 * time.Hour,
			Environment:             "development",
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddr)
		assert.Equal(t, "postgres://defaults/db", cfg.DatabaseDSN)
		assert.Equal(t, "key", cfg.SessionSecret)
		assert.Equal(t, 24*time.Hour, cfg.SessionValidityDuration)
		assert.Equal(t, "development", cfg.Environment)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
