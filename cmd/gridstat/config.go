// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// configValidate checks config after env and flags are merged.
var configValidate = validator.New()

// config is the environment-backed configuration. Root flags override it.
type config struct {
	LogLevel  string   `env:"GRIDSTAT_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat string   `env:"GRIDSTAT_LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Drop      []string `env:"GRIDSTAT_DROP" envSeparator:"," validate:"dive,required"`
}

// parseEnv loads configuration from environment variables.
func parseEnv() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate reports the first invalid field.
func (c config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// level maps the configured level name onto slog.
func (c config) level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}
