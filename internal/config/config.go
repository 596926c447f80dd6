// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/msomdec/storefront/internal/credential"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	minSecretLen  = 32
	minBcryptCost = 4
	maxBcryptCost = 14
)

// Config is read once at startup and treated as read-only afterwards.
type Config struct {
	Port           string        `env:"PORT"            envDefault:"3000"`
	DatabaseDriver string        `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	DatabasePath   string        `env:"DATABASE_PATH"   envDefault:"storefront.db"`
	DatabaseDSN    string        `env:"DATABASE_DSN"`
	JWTSecret      string        `env:"JWT_SECRET"`
	JWTExpires     time.Duration `env:"JWT_EXPIRES"     envDefault:"2160h"`
	PasswordHasher string        `env:"PASSWORD_HASHER" envDefault:"bcrypt"`
	BcryptCost     int           `env:"BCRYPT_COST"     envDefault:"12"`
	LogLevel       slog.Level    `env:"LOG_LEVEL"       envDefault:"INFO"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	} else if len(c.JWTSecret) < minSecretLen {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d characters", minSecretLen))
	}
	if c.JWTExpires <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRES must be positive"))
	}

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabasePath == "" {
			errs = append(errs, errors.New("DATABASE_PATH is required for sqlite"))
		}
	case DriverPostgres:
		if c.DatabaseDSN == "" {
			errs = append(errs, errors.New("DATABASE_DSN is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER %q is not one of sqlite, postgres", c.DatabaseDriver))
	}

	switch c.PasswordHasher {
	case credential.AlgorithmBcrypt:
		if c.BcryptCost < minBcryptCost || c.BcryptCost > maxBcryptCost {
			errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", minBcryptCost, maxBcryptCost))
		}
	case credential.AlgorithmArgon2id:
	default:
		errs = append(errs, fmt.Errorf("PASSWORD_HASHER %q is not one of bcrypt, argon2id", c.PasswordHasher))
	}

	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
