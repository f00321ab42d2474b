package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client.
const (
	envAPIBaseURL = "WOLFREAD_API_URL"
	envStatePath  = "WOLFREAD_STATE_PATH"
	envKeyPath    = "WOLFREAD_KEY_PATH"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; a missing file is not
// an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envStatePath); v != "" {
		cfg.StatePath = v
	}
	if v := os.Getenv(envKeyPath); v != "" {
		cfg.KeyPath = v
	}
}
