// Package config loads runtime configuration for the WolfRead CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, including an optional .env file in the working
//     directory (WOLFREAD_API_URL, WOLFREAD_STATE_PATH, WOLFREAD_KEY_PATH).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      request timeout (seconds)
//	-s string   path to the local state database
//	-k string   path to the sealing key file
//	-i int      refresh watcher interval (seconds)
//
// # JSON schema
//
// Durations accept either strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000/api",
//	  "request_timeout": "10s",
//	  "state_path": "wolfread.db",
//	  "key_path": "wolfread.key",
//	  "refresh_check_interval": "30s"
//	}
package config
