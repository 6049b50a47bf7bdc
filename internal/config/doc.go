// Package config loads and validates application configuration from
// environment variables (DRAFTPILOT_ prefix) and an optional config.yaml.
// Environment variables take precedence over file values.
package config
