package config

import (
	"flag"
	"os"
	"time"

	"github.com/wolfread/wolfread-go/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API
//	-t int      request timeout in seconds
//	-s string   path to the local state database
//	-k string   path to the sealing key file
//	-i int      refresh watcher interval in seconds
//
// os.Args is filtered down to the flags handled here so other components
// (like the -c config flag) are left alone.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-s", "-k", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StatePath, "s", cfg.StatePath, "path to the local state database")
	fs.StringVar(&cfg.KeyPath, "k", cfg.KeyPath, "path to the sealing key file")
	interval := fs.Int("i", int(cfg.RefreshCheckInterval.Seconds()), "refresh watcher interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.RefreshCheckInterval = time.Duration(*interval) * time.Second
}
