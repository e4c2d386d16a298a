// Package config loads agent settings from DOMTRACE_* environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Address is the loopback listen address for the ingest endpoint.
	Address string `env:"DOMTRACE_ADDRESS" envDefault:"127.0.0.1:8123"`
	// DataDir overrides the platform application data directory.
	DataDir   string `env:"DOMTRACE_DATA_DIR"`
	LogLevel  string `env:"DOMTRACE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DOMTRACE_LOG_FORMAT" envDefault:"json"`
}

// FromEnv parses the environment into a Config.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
