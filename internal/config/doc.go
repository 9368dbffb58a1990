// Package config loads and validates the application configuration.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// config file (flashnotes.yaml, .toml or .json), and FLASHNOTES_-prefixed
// environment variables such as FLASHNOTES_STORAGE_DATA_FILE.
package config
