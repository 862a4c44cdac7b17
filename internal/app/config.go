package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat string // 'text' or 'json'
	LogLevel  string // 'debug', 'info', 'warn' or 'error'
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		return nil, errors.New("LogFormat is a required configuration field and cannot be empty")
	}
	if cfg.LogLevel == "" {
		return nil, errors.New("LogLevel is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
