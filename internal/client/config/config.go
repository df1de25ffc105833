package config

import "time"

// Config holds runtime settings for the blood bank CLI.
//
// Fields:
//   - APIBaseURL: root of the REST API, e.g. http://localhost:5000/api.
//   - HealthTimeout: upper bound for one connectivity probe.
//   - RequestTimeout: per-call deadline for list/create calls; zero means none.
//   - OnlineCheckInterval: how often the client probes API reachability.
//   - DatabasePath: SQLite file backing the local fallback store.
//   - UseMemoryStore: keep fallback data in memory only.
//   - AdminUser, AdminPasswordHash: dashboard credentials; an empty hash
//     means the built-in demo password.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL          string
	HealthTimeout       time.Duration
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	DatabasePath        string
	UseMemoryStore      bool
	AdminUser           string
	AdminPasswordHash   string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.HealthTimeout = 3 * time.Second
	c.RequestTimeout = 0
	c.OnlineCheckInterval = 10 * time.Second
	c.DatabasePath = "bloodbank.db"
	c.UseMemoryStore = false
	c.AdminUser = "admin"
	c.AdminPasswordHash = ""
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
