// Package config handles loading and validating the application's
// configuration from environment variables and optional config files.
package config
