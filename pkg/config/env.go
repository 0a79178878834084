// Package config provides the environment-variable overrides recognized by
// the Keyhaven client.
package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variables consumed at client construction.
const (
	// EnvBaseURL overrides the default API endpoint.
	EnvBaseURL = "KEYHAVEN_API_URL"
	// EnvCacheTTL overrides the export-cache TTL, in whole seconds.
	EnvCacheTTL = "KEYHAVEN_CACHE_TTL"
	// EnvToken supplies the bearer token to the CLI.
	EnvToken = "KEYHAVEN_TOKEN"
)

// GetEnv returns the environment variable value for key, or def if unset or empty.
func GetEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// GetEnvSeconds returns the environment variable value for key parsed as a
// whole number of seconds, or def if unset or invalid.
func GetEnvSeconds(key string, def time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if secs, err := strconv.Atoi(val); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return def
}
