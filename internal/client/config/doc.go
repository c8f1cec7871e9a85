// Package config loads runtime configuration for the contactdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c/-config or $CONTACTDESK_CONFIG.
//  3. Environment variables prefixed with CONTACTDESK_ (see envConfig).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the contacts backend
//	-d string   path of the local SQLite database
//	-t int      request timeout (seconds)
//	-l string   log level: trace, debug, info, warn, error
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "30s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8000",
//	  "database_path": "contactdesk.db",
//	  "request_timeout": "30s",
//	  "log_level": "info",
//	  "log_pretty": true,
//	  "history_file": ".contactdesk_history",
//	  "export_dir": "exports",
//	  "export_bucket": "",
//	  "export_prefix": "reports",
//	  "export_region": "us-east-1",
//	  "export_endpoint": "",
//	  "export_access_key": "",
//	  "export_secret_key": ""
//	}
package config
