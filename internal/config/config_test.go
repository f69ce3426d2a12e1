package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.AccessLevel != "trial" {
		t.Errorf("AccessLevel = %q, want trial", cfg.AccessLevel)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.Language)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.FetchInterval != time.Second {
		t.Errorf("FetchInterval = %v, want 1s", cfg.FetchInterval)
	}
	if cfg.Transport != "stdio" {
		t.Errorf("Transport = %q, want stdio", cfg.Transport)
	}
	if !cfg.CacheEnabled {
		t.Error("cache should default to enabled")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SPORTRADAR_API_KEY", "k123")
	t.Setenv("SPORTRADAR_LANGUAGE", "de")
	t.Setenv("FETCH_INTERVAL_MS", "250")
	t.Setenv("MCP_TRANSPORT", "http")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example")

	cfg := Load()

	if cfg.APIKey != "k123" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Language != "de" {
		t.Errorf("Language = %q", cfg.Language)
	}
	if cfg.FetchInterval != 250*time.Millisecond {
		t.Errorf("FetchInterval = %v", cfg.FetchInterval)
	}
	if cfg.Transport != "http" {
		t.Errorf("Transport = %q", cfg.Transport)
	}
	if cfg.CacheEnabled {
		t.Error("CACHE_ENABLED=false should disable the cache")
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "http://b.example" {
		t.Errorf("CORSAllowOrigins = %v", cfg.CORSAllowOrigins)
	}
}
