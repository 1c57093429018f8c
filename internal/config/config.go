package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"3001"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"murmur"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"murmur_dev_password"`
	DBName     string `env:"DB_NAME" envDefault:"murmur"`
	JWTSecret  string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	// TokenTTL is the fixed validity window of issued tokens.
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"2h"`
	ClientDir string        `env:"CLIENT_DIR" envDefault:"client/build"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}
	return cfg, nil
}
