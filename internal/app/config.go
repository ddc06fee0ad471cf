package app

import (
	"errors"
	"fmt"
)

// Config holds everything an App needs before it can run a session.
type Config struct {
	DBPath   string // sqlite settings file; empty disables stored settings
	LogLevel string
	NoColor  bool
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogLevel == "" {
		return nil, errors.New("LogLevel is a required configuration field and cannot be empty")
	}
	if !logLevels[cfg.LogLevel] {
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	return &cfg, nil
}
