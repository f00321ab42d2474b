package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	resetArgs(t, "-a", "http://flags.example.com/api", "-t", "7", "-s", "s.db", "-k", "s.key", "-i", "45")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "http://flags.example.com/api", cfg.APIBaseURL)
	require.Equal(t, 7*time.Second, cfg.RequestTimeout)
	require.Equal(t, "s.db", cfg.StatePath)
	require.Equal(t, "s.key", cfg.KeyPath)
	require.Equal(t, 45*time.Second, cfg.RefreshCheckInterval)
}

func TestParseFlags_DefaultsKeptWhenAbsent(t *testing.T) {
	resetArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
