package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Upstream: UpstreamConfig{
			APIKey:    "test-key",
			BaseURL:   "https://api.openweathermap.org/data/2.5",
			Timeout:   30 * time.Second,
			UserAgent: "weather-mcp-go/1.0",
		},
		Session: SessionConfig{
			Timeout:         time.Hour,
			CleanupInterval: 5 * time.Minute,
			RequireSession:  true,
		},
		LogLevel: "info",
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got error: %v", err)
	}
}

func TestValidateRejectsEmptyAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.Upstream.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for empty API key")
	}
}

func TestValidateRejectsNonPositiveDurations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"upstream timeout", func(c *Config) { c.Upstream.Timeout = 0 }},
		{"session timeout", func(c *Config) { c.Session.Timeout = -time.Second }},
		{"cleanup interval", func(c *Config) { c.Session.CleanupInterval = 0 }},
	}

	for _, tc := range cases {
		cfg := validConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("Expected error for non-positive %s", tc.name)
		}
	}
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unknown log level")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "env-key")
	t.Setenv("OPENWEATHER_TIMEOUT", "15s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Upstream.APIKey != "env-key" {
		t.Errorf("Expected API key from environment, got %q", cfg.Upstream.APIKey)
	}
	if cfg.Upstream.Timeout != 15*time.Second {
		t.Errorf("Expected 15s timeout, got %v", cfg.Upstream.Timeout)
	}
	if cfg.Upstream.BaseURL == "" {
		t.Error("Expected default base URL")
	}
	if !cfg.Session.RequireSession {
		t.Error("Expected RequireSession default true")
	}
}

func TestLoadFailsWithoutAPIKey(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Error("Expected error when API key is missing")
	}
}
