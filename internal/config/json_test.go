package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	jsonPath := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"server": {"base_url": "http://localhost:8000"},
		"timeouts": {"refresh": "2m", "cookies": "1m", "probe": "5s"},
		"batch": {"delay": "2s"},
		"output": {"dir": "reports"}
	}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonBody), 0o644))

	cfg, err := parseJSON(jsonPath)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Server.BaseURL)
	assert.Equal(t, 2*time.Minute, cfg.Timeouts.Refresh)
	assert.Equal(t, time.Minute, cfg.Timeouts.Cookies)
	assert.Equal(t, 5*time.Second, cfg.Timeouts.Probe)
	assert.Equal(t, 2*time.Second, cfg.Batch.Delay)
	assert.Equal(t, "reports", cfg.Output.Dir)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	jsonPath := filepath.Join(t.TempDir(), "config.json")
	// Durations may also arrive as raw nanoseconds.
	jsonBody := `{"timeouts": {"probe": 5000000000}}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonBody), 0o644))

	cfg, err := parseJSON(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Timeouts.Probe)
}

func TestParseJSON_BadFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParseJSON_BadBody(t *testing.T) {
	jsonPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte("{"), 0o644))

	_, err := parseJSON(jsonPath)
	require.Error(t, err)
}
