package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/wolfread/wolfread-go/internal/flagx"
	"github.com/wolfread/wolfread-go/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so the file can say "10s" or integer nanoseconds.
type JsonConfig struct {
	APIBaseURL           string         `json:"api_base_url"`
	RequestTimeout       timex.Duration `json:"request_timeout"`
	StatePath            string         `json:"state_path"`
	KeyPath              string         `json:"key_path"`
	RefreshCheckInterval timex.Duration `json:"refresh_check_interval"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. No flag, no JSON. Read or unmarshal errors panic;
// a config file that exists but cannot be parsed is a deployment mistake
// the user should see immediately.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
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
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.StatePath != "" {
		cfg.StatePath = jc.StatePath
	}
	if jc.KeyPath != "" {
		cfg.KeyPath = jc.KeyPath
	}
	if jc.RefreshCheckInterval.Duration > 0 {
		cfg.RefreshCheckInterval = time.Duration(jc.RefreshCheckInterval.Duration)
	}
}
