// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/simplehardware/labyrinth/generator"
	"github.com/simplehardware/labyrinth/grid"
	"github.com/simplehardware/labyrinth/placement"
)

// ErrInvalidConfig wraps every range violation reported by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Config controls maze generation and CLI logging.
type Config struct {
	Size         int     `env:"LABYRINTH_SIZE"          envDefault:"21"`
	Players      int     `env:"LABYRINTH_PLAYERS"       envDefault:"4"`
	Seed         int64   `env:"LABYRINTH_SEED"`
	Attempts     int     `env:"LABYRINTH_ATTEMPTS"      envDefault:"40"`
	Tolerance    float64 `env:"LABYRINTH_TOLERANCE"     envDefault:"0.2"`
	CenterPool   int     `env:"LABYRINTH_CENTER_POOL"   envDefault:"20"`
	StrictSpread bool    `env:"LABYRINTH_STRICT_SPREAD"`
	LogLevel     string  `env:"LABYRINTH_LOG_LEVEL"     envDefault:"info"`
	LogFormat    string  `env:"LABYRINTH_LOG_FORMAT"    envDefault:"text"`
}

// FromEnv loads configuration from environment variables with defaults.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.Size < generator.MinSize:
		return fmt.Errorf("%w: size %d is below %d", ErrInvalidConfig, c.Size, generator.MinSize)
	case c.Players < 1 || c.Players > grid.MaxPlayers:
		return fmt.Errorf("%w: players must be in 1..%d, got %d", ErrInvalidConfig, grid.MaxPlayers, c.Players)
	case c.Attempts < 1:
		return fmt.Errorf("%w: attempts must be positive, got %d", ErrInvalidConfig, c.Attempts)
	case c.Tolerance < 0:
		return fmt.Errorf("%w: tolerance must not be negative, got %v", ErrInvalidConfig, c.Tolerance)
	case c.CenterPool < 1:
		return fmt.Errorf("%w: center pool must be positive, got %d", ErrInvalidConfig, c.CenterPool)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// PlacementOptions translates the settings into placement options.
// Validate must have passed.
func (c Config) PlacementOptions() []placement.Option {
	opts := []placement.Option{
		placement.WithAttempts(c.Attempts),
		placement.WithTolerance(c.Tolerance),
		placement.WithCenterPool(c.CenterPool),
	}
	if c.StrictSpread {
		opts = append(opts, placement.WithStrictSpread())
	}
	return opts
}
