// Package config loads runtime configuration for the PayOrbit CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), including an optional .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the PayOrbit backend API
//	-s string   path to the local state database
//	-e string   directory exported reports are written to
//
// Environment variables
//
//	PAYORBIT_API_URL, PAYORBIT_STATE_PATH, PAYORBIT_EXPORT_DIR
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://payorbit.example.com/api",
//	  "state_path": "payorbit.db",
//	  "export_dir": "exports"
//	}
package config
