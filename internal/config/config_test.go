package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"wolfread"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, "wolfread.db", cfg.StatePath)
	require.Equal(t, "wolfread.key", cfg.KeyPath)
	require.Equal(t, 30*time.Second, cfg.RefreshCheckInterval)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv(envAPIBaseURL, "https://reads.example.com/api")
	t.Setenv(envStatePath, "/tmp/state.db")

	cfg := LoadConfig()

	require.Equal(t, "https://reads.example.com/api", cfg.APIBaseURL)
	require.Equal(t, "/tmp/state.db", cfg.StatePath)
	require.Equal(t, "wolfread.key", cfg.KeyPath)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	resetArgs(t, "-a", "http://flag.example.com/api", "-t", "5")
	t.Setenv(envAPIBaseURL, "http://env.example.com/api")

	cfg := LoadConfig()

	require.Equal(t, "http://flag.example.com/api", cfg.APIBaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
}
