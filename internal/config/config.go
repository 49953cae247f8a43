// internal/config/config.go
//
// Runtime settings for a hangman session, read from environment variables.
// A .env file, if present, is loaded by main before Load runs.

// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings of a hangman session.
type Config struct {
	WordsFile string `env:"HANGMAN_WORDS_FILE"`
	Attempts  int    `env:"HANGMAN_ATTEMPTS" envDefault:"10"`
	Dedupe    bool   `env:"HANGMAN_DEDUPE"   envDefault:"false"`
	LogLevel  string `env:"LOG_LEVEL"        envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY"       envDefault:"true"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Attempts <= 0 {
		return Config{}, fmt.Errorf("HANGMAN_ATTEMPTS must be positive, got %d", cfg.Attempts)
	}
	if cfg.LogLevel == "" {
		return Config{}, errors.New("LOG_LEVEL must not be empty")
	}
	return cfg, nil
}
