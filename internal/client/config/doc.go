// Package config loads runtime configuration for the styleoracle CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables (see parseEnv), with an optional .env file.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP API
//	-t int      request timeout (seconds)
//	-d string   path to the local session database
//
// Supported environment variables
//
//	STYLEORACLE_API_URL
//	STYLEORACLE_REQUEST_TIMEOUT   (e.g. "15s")
//	STYLEORACLE_DB_PATH
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "request_timeout": "15s",
//	  "database_path": "styleoracle.db"
//	}
package config
