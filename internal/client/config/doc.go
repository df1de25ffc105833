// Package config loads runtime configuration for the blood bank CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c / -config or the
//     BLOODBANK_CONFIG environment variable.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-t int      health check timeout (milliseconds)
//	-r int      list/create request timeout (milliseconds, 0 = none)
//	-i int      online status check interval (seconds)
//	-d string   path to the local SQLite store
//	-memory     keep fallback data in memory instead of SQLite
//	-u string   admin user name
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "health_timeout": "3s",
//	  "request_timeout": "0s",
//	  "online_check_interval": "10s",
//	  "database_path": "bloodbank.db",
//	  "use_memory_store": false,
//	  "admin_user": "admin",
//	  "admin_password_hash": "$2a$10$...",
//	  "log_level": "info"
//	}
//
// The admin password hash can only be set from JSON. When it is empty the
// CLI accepts the demo password.
package config
