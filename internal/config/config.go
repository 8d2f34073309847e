// Package config loads service configuration from the environment.
package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/emberforge/adventurer-api/internal/errors"
)

// Config holds the runtime configuration for the adventurer-api server.
type Config struct {
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	RedisAddr            string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPoolSize        int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	RedisConnMaxIdleTime time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	RedisUseTLS          bool          `env:"REDIS_USE_TLS" envDefault:"false"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field-level constraints.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("HTTP_PORT", c.HTTPPort, 1, 65535, vb)
	errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)

	return vb.Build()
}

// SlogLevel maps the configured log level string to a slog.Level,
// defaulting to info for unrecognized values.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
