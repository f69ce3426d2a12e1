// Package config provides centralized configuration loaded from environment
// variables, with flags layered on top by cmd/scorebridge.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is populated from environment variables.
type Config struct {
	// Sportradar
	APIKey      string
	AccessLevel string // trial or production
	Language    string
	Format      string // json or xml

	// Minimum spacing between upstream calls. Courtesy throttling for the
	// trial tier, not derived from rate-limit headers.
	FetchInterval time.Duration
	HTTPTimeout   time.Duration

	// MCP transport
	Transport string // stdio or http
	Host      string
	Port      int

	// HTTP transport extras
	CORSAllowOrigins []string

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
// APIKey may still be empty here; cmd/scorebridge treats a missing key as a
// fatal startup error after flags are applied.
func Load() *Config {
	return &Config{
		APIKey:      envOr("SPORTRADAR_API_KEY", ""),
		AccessLevel: envOr("SPORTRADAR_ACCESS_LEVEL", "trial"),
		Language:    envOr("SPORTRADAR_LANGUAGE", "en"),
		Format:      envOr("SPORTRADAR_FORMAT", "json"),

		FetchInterval: time.Duration(envInt("FETCH_INTERVAL_MS", 1000)) * time.Millisecond,
		HTTPTimeout:   time.Duration(envInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,

		Transport: envOr("MCP_TRANSPORT", "stdio"),
		Host:      envOr("API_HOST", "0.0.0.0"),
		Port:      envInt("API_PORT", envInt("PORT", 8000)),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{"*"}),

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
