// Package config loads runtime configuration for the vaxkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-l string   message language, "en" or "pt"
//	-s string   initial simulated date, dd-mm-yyyy
//
// # JSON schema
//
//	{
//	  "language": "pt",
//	  "hash_table_size": 1009,
//	  "max_lots": 1000,
//	  "start_date": "01-01-2025"
//	}
//
// All JSON keys are optional; a partial file overrides only the settings it
// names.
package config
