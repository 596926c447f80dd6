package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/storefront/internal/config"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", secret)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, config.DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "storefront.db", cfg.DatabasePath)
	assert.Equal(t, 90*24*time.Hour, cfg.JWTExpires)
	assert.Equal(t, "bcrypt", cfg.PasswordHasher)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", secret)
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost/db")
	t.Setenv("JWT_EXPIRES", "1h")
	t.Setenv("PASSWORD_HASHER", "argon2id")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.DriverPostgres, cfg.DatabaseDriver)
	assert.Equal(t, time.Hour, cfg.JWTExpires)
	assert.Equal(t, "argon2id", cfg.PasswordHasher)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("JWT_SECRET", secret)
	t.Setenv("JWT_EXPIRES", "ninety days")

	_, err := config.Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		Port:           "3000",
		DatabaseDriver: config.DriverSQLite,
		DatabasePath:   "x.db",
		JWTSecret:      secret,
		JWTExpires:     time.Hour,
		PasswordHasher: "bcrypt",
		BcryptCost:     12,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"short secret", func(c *config.Config) { c.JWTSecret = "short" }, "at least 32"},
		{"zero lifetime", func(c *config.Config) { c.JWTExpires = 0 }, "JWT_EXPIRES"},
		{"unknown driver", func(c *config.Config) { c.DatabaseDriver = "mysql" }, "DATABASE_DRIVER"},
		{"postgres without dsn", func(c *config.Config) { c.DatabaseDriver = config.DriverPostgres }, "DATABASE_DSN"},
		{"bcrypt cost low", func(c *config.Config) { c.BcryptCost = 3 }, "BCRYPT_COST"},
		{"bcrypt cost high", func(c *config.Config) { c.BcryptCost = 15 }, "BCRYPT_COST"},
		{"unknown hasher", func(c *config.Config) { c.PasswordHasher = "md5" }, "PASSWORD_HASHER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	argon := valid
	argon.PasswordHasher = "argon2id"
	argon.BcryptCost = 0
	assert.NoError(t, argon.Validate())
}
