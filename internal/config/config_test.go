package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "./data/app.db", cfg.DatabasePath)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, "development", cfg.Env)
	assert.Empty(t, cfg.RedisURL)
	assert.NotEmpty(t, cfg.AllowedOrigins)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "an-explicit-secret-long-enough-to-be-safe")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_PATH", "/tmp/blog.db")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "an-explicit-secret-long-enough-to-be-safe", cfg.JWTSecret)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/blog.db", cfg.DatabasePath)
	assert.Equal(t, "production", cfg.Env)
}

func TestValidate(t *testing.T) {
	t.Run("missing port", func(t *testing.T) {
		cfg := &Config{DatabasePath: "./data/app.db"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing database path", func(t *testing.T) {
		cfg := &Config{Port: "4000"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty secret falls back, never fatal", func(t *testing.T) {
		cfg := &Config{Port: "4000", DatabasePath: "./data/app.db"}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	})

	t.Run("default secret in production still starts", func(t *testing.T) {
		cfg := &Config{
			Port:         "4000",
			DatabasePath: "./data/app.db",
			JWTSecret:    DefaultJWTSecret,
			Env:          "production",
		}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("short secret accepted with warning", func(t *testing.T) {
		cfg := &Config{Port: "4000", DatabasePath: "./data/app.db", JWTSecret: "short"}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "short", cfg.JWTSecret)
	})
}
