// Package config loads, normalizes, and validates devlog configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The explicit paths.log_file value is the
// supported way to locate the log; the legacy project-folder policy remains
// available through paths.project_dir for callers that still rely on it.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
