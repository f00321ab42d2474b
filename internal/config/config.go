package config

import "time"

// Config holds runtime settings for the WolfRead CLI.
type Config struct {
	// APIBaseURL is the root of the backend REST API, including the /api
	// prefix, e.g. "http://localhost:8000/api".
	APIBaseURL string

	// RequestTimeout bounds every HTTP request end to end. The backend
	// never specifies one; a hung request must not block the session
	// lifecycle indefinitely.
	RequestTimeout time.Duration

	// StatePath is the sqlite file holding tokens and the onboarding flag.
	StatePath string

	// KeyPath is the file holding the at-rest sealing key.
	KeyPath string

	// RefreshCheckInterval is how often the refresh watcher inspects the
	// access token's expiry.
	RefreshCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.StatePath = "wolfread.db"
	c.KeyPath = "wolfread.key"
	c.RefreshCheckInterval = 30 * time.Second
}

// LoadConfig constructs a Config by applying defaults, then environment
// variables (including an optional .env file), then an optional JSON file,
// then command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
