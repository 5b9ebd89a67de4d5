package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the process configuration, read from the environment.
type Config struct {
	Port         string `env:"PORT,          default=8080"`
	DatabasePath string `env:"DATABASE_PATH, default=qa-board.db"`
	BcryptCost   int    `env:"BCRYPT_COST,   default=12"`
	LogLevel     string `env:"LOG_LEVEL,     default=info"`
}

// Load reads configuration from environment variables using
// go-envconfig and validates the values that have hard bounds.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}

	if cfg.BcryptCost < 4 || cfg.BcryptCost > 14 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cfg.BcryptCost)
	}

	return &cfg, nil
}

// SlogLevel maps the configured log level string to a slog.Level.
// Unknown values fall back to info.
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
