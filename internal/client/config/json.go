package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/bloodbank/internal/flagx"
	"github.com/dmitrijs2005/bloodbank/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are timex.Duration so they can be written as "3s" or integer nanoseconds.
// Pointer fields distinguish "absent" from an explicit zero.
type JsonConfig struct {
	APIBaseURL          string          `json:"api_base_url"`
	HealthTimeout       *timex.Duration `json:"health_timeout"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	DatabasePath        string          `json:"database_path"`
	UseMemoryStore      *bool           `json:"use_memory_store"`
	AdminUser           string          `json:"admin_user"`
	AdminPasswordHash   string          `json:"admin_password_hash"`
	LogLevel            string          `json:"log_level"`
}

// parseJson overlays Config with the fields present in the JSON file named
// by -c/-config (or $BLOODBANK_CONFIG). Without a file it does nothing.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFilePath()
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

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.HealthTimeout != nil {
		cfg.HealthTimeout = jc.HealthTimeout.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.UseMemoryStore != nil {
		cfg.UseMemoryStore = *jc.UseMemoryStore
	}
	if jc.AdminUser != "" {
		cfg.AdminUser = jc.AdminUser
	}
	if jc.AdminPasswordHash != "" {
		cfg.AdminPasswordHash = jc.AdminPasswordHash
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
