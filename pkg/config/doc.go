// Package config handles configuration management for savedata.
// It loads configuration from the embedded defaults, the user's TOML file,
// SAVEDATA_* environment variables and command-line overrides, in that
// order of increasing priority.
package config
