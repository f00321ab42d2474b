package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "https://json.example.com/api",
		"request_timeout": "3s",
		"refresh_check_interval": "1m"
	}`), 0o600))

	resetArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "https://json.example.com/api", cfg.APIBaseURL)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
	require.Equal(t, time.Minute, cfg.RefreshCheckInterval)
	// Untouched fields keep their defaults.
	require.Equal(t, "wolfread.db", cfg.StatePath)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	resetArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
}

func TestParseJson_BadFilePanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	resetArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(cfg) })
}
