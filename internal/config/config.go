// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v8"
)

type Config struct {
	Port   string `env:"PORT" envDefault:"8080"`
	DBPath string `env:"DB_PATH" envDefault:"./data/keuangan.db"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev-insecure-secret-change"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Seed identity, matching the reference system's default account.
	SeedUsername string `env:"SEED_USERNAME" envDefault:"karissa"`
	SeedPassword string `env:"SEED_PASSWORD" envDefault:"1"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("DB_PATH must not be empty")
	}
	return cfg, nil
}
