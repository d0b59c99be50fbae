// Package config reads server settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every SKAZMOR_* setting.
type Config struct {
	Addr           string `env:"ADDR" envDefault:":8080"`
	DeckPath       string `env:"DECK_PATH" envDefault:"decks/default.yaml"`
	ContentPath    string `env:"CONTENT_PATH" envDefault:"content/content.yaml"`
	HistoryDBPath  string `env:"HISTORY_DB_PATH" envDefault:"data/history.db"`
	Lang           string `env:"LANG" envDefault:"ru"`
	Seed           int64  `env:"SEED" envDefault:"0"`
	GodModeAllowed bool   `env:"GOD_MODE_ALLOWED" envDefault:"false"`
}

// Load parses the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv fills target from SKAZMOR_-prefixed variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: "SKAZMOR_"}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
