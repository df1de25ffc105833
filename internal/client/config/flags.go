package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/bloodbank/internal/flagx"
)

var knownFlags = []string{"-a", "-t", "-r", "-i", "-d", "-memory", "-u", "-l"}

// parseFlags populates selected Config fields from command-line flags.
//
// Only the flags listed in knownFlags are parsed; the rest of os.Args is
// left to other components (see flagx.FilterArgs).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the blood bank API")
	healthTimeout := fs.Int("t", int(cfg.HealthTimeout.Milliseconds()), "health check timeout (in milliseconds)")
	requestTimeout := fs.Int("r", int(cfg.RequestTimeout.Milliseconds()), "list/create request timeout (in milliseconds, 0 = none)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local SQLite store")
	fs.BoolVar(&cfg.UseMemoryStore, "memory", cfg.UseMemoryStore, "keep local fallback data in memory only")
	fs.StringVar(&cfg.AdminUser, "u", cfg.AdminUser, "admin user name")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HealthTimeout = time.Duration(*healthTimeout) * time.Millisecond
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Millisecond
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
