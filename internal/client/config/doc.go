// Package config loads runtime configuration for the i-Stokvel CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d string   path of the local session database
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://api.istokvel.example",
//	  "http_timeout": 15,
//	  "database_path": "/var/lib/istokvel/session.db"
//	}
package config
