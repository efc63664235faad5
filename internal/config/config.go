// Reelpin - Movie Discovery and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpin

// Package config defines and loads the application configuration.
//
// Layered loading with Koanf v2: built-in defaults, then an optional YAML
// config file, then environment variables. ENV > File > Defaults.
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Storage StorageConfig `koanf:"storage"`
	Engine  EngineConfig  `koanf:"engine"`
	Chat    ChatConfig    `koanf:"chat"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	// Timeout bounds request read/write; also the graceful shutdown window.
	Timeout time.Duration `koanf:"timeout"`

	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitReqs requests per RateLimitWindow per client IP.
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// StorageConfig configures the embedded key-value store.
type StorageConfig struct {
	// Path is the BadgerDB directory.
	Path string `koanf:"path"`

	// InMemory disables disk persistence. State then lives only for the
	// life of the process.
	InMemory bool `koanf:"in_memory"`
}

// EngineConfig configures recommendation defaults.
type EngineConfig struct {
	// DefaultLimit is the recommendation list size when the client does
	// not pass one.
	DefaultLimit int `koanf:"default_limit"`

	// MaxLimit caps the client-requested list size.
	MaxLimit int `koanf:"max_limit"`
}

// ChatConfig configures the hosted chat widget adapter.
type ChatConfig struct {
	// Enabled toggles the chat integration. When disabled the chat
	// endpoints report the widget as unavailable.
	Enabled bool `koanf:"enabled"`

	// URL is the hosted webchat websocket endpoint.
	URL string `koanf:"url"`

	// HandshakeTimeout bounds the websocket dial.
	HandshakeTimeout time.Duration `koanf:"handshake_timeout"`

	// QueueSize bounds messages queued while the widget is loading.
	QueueSize int `koanf:"queue_size"`

	// FailureThreshold is the consecutive-failure count before the
	// circuit breaker opens.
	FailureThreshold uint32 `koanf:"failure_threshold"`

	// BreakerTimeout is the open-state duration before another attempt.
	BreakerTimeout time.Duration `koanf:"breaker_timeout"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateEngine(); err != nil {
		return err
	}
	if err := c.validateChat(); err != nil {
		return err
	}
	return c.validateLogging()
}

// validateServer validates the HTTP server configuration.
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	return nil
}

// validateEngine validates recommendation defaults.
func (c *Config) validateEngine() error {
	if c.Engine.DefaultLimit < 1 {
		return fmt.Errorf("engine.default_limit must be at least 1, got %d", c.Engine.DefaultLimit)
	}
	if c.Engine.MaxLimit < c.Engine.DefaultLimit {
		return fmt.Errorf("engine.max_limit (%d) must not be below engine.default_limit (%d)",
			c.Engine.MaxLimit, c.Engine.DefaultLimit)
	}
	return nil
}

// validateChat validates the chat adapter configuration (only if enabled).
func (c *Config) validateChat() error {
	if !c.Chat.Enabled {
		return nil
	}
	if c.Chat.URL == "" {
		return fmt.Errorf("chat.url is required when chat is enabled")
	}
	return nil
}

// validateLogging validates the logging configuration.
func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
