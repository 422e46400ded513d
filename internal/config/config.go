package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/DoyleJ11/unite-synergy/internal/engine"
	"github.com/DoyleJ11/unite-synergy/internal/roster"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	RosterPath  string `env:"SYNERGY_ROSTER"`
	RosterDSN   string `env:"SYNERGY_ROSTER_DSN"`
	RosterTable string `env:"SYNERGY_ROSTER_TABLE" envDefault:"roster"`

	// Decoded by engine.ParseStackSize, so "5" works as well as "5 Stack".
	StackSize engine.StackSize `env:"SYNERGY_STACK" envDefault:"3 Stack"`
}

// Load reads an optional .env file, then the process environment.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// Variables already set in the environment win over the file.
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if !cfg.StackSize.Valid() {
		return Config{}, fmt.Errorf("SYNERGY_STACK: unknown stack size %q", cfg.StackSize)
	}
	return cfg, nil
}

func (c Config) RosterSource() roster.Source {
	return roster.Source{Path: c.RosterPath, DSN: c.RosterDSN, Table: c.RosterTable}
}

func (c Config) Development() bool {
	return c.Environment == "" || c.Environment == "development"
}
