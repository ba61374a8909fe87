// Package config loads server configuration from the environment. The
// upstream credential is read once at startup and is never written to logs.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config contains the full server configuration.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Session  SessionConfig
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Addr            string        `envconfig:"SERVER_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// UpstreamConfig contains settings for the weather API client.
type UpstreamConfig struct {
	APIKey    string        `envconfig:"OPENWEATHER_API_KEY" required:"true"`
	BaseURL   string        `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	Timeout   time.Duration `envconfig:"OPENWEATHER_TIMEOUT" default:"30s"`
	UserAgent string        `envconfig:"USER_AGENT" default:"weather-mcp-go/1.0"`
}

// SessionConfig contains MCP session lifecycle settings.
type SessionConfig struct {
	Timeout         time.Duration `envconfig:"SESSION_TIMEOUT" default:"1h"`
	CleanupInterval time.Duration `envconfig:"SESSION_CLEANUP_INTERVAL" default:"5m"`
	RequireSession  bool          `envconfig:"REQUIRE_SESSION" default:"true"`
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (*Config, error) {
	// Best effort; a missing .env file is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for values that would break the server
// at runtime. Errors here are fatal at startup.
func (c *Config) Validate() error {
	if c.Upstream.APIKey == "" {
		return fmt.Errorf("OPENWEATHER_API_KEY must not be empty")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("OPENWEATHER_BASE_URL must not be empty")
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("OPENWEATHER_TIMEOUT must be positive")
	}
	if c.Session.Timeout <= 0 {
		return fmt.Errorf("SESSION_TIMEOUT must be positive")
	}
	if c.Session.CleanupInterval <= 0 {
		return fmt.Errorf("SESSION_CLEANUP_INTERVAL must be positive")
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error")
	}
	return nil
}
