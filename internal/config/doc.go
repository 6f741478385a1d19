// Package config provides configuration management for embedrs.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Environment variable overrides (EMBEDRS_*)
//   - Conversion to listfmt.Config for the list formatter
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Reads ./content, renders HTML bylines
//	// ", " separator, "and" before the last author
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/embedrs.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment
//
// ApplyEnv overrides individual settings from the environment, e.g.
// EMBEDRS_CONTENT=/srv/blog/content or EMBEDRS_USE_AND=false.
package config
