// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is the insecure fallback signing secret used when
// JWT_SECRET is not supplied. Startup continues with a warning rather than
// failing so a fresh checkout can run without any environment at all.
const DefaultJWTSecret = "dev-secret-change-me"

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	Port           string `mapstructure:"PORT"`
	DatabasePath   string `mapstructure:"DATABASE_PATH"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	RedisURL       string `mapstructure:"REDIS_URL"`
	Env            string `mapstructure:"APP_ENV"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; environment variables and defaults cover
	// everything it could contain.
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", "4000")
	viper.SetDefault("DATABASE_PATH", "./data/app.db")
	viper.SetDefault("JWT_SECRET", DefaultJWTSecret)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5500,http://127.0.0.1:5500")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("APP_ENV", "development")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks required values and warns about insecure settings.
// A missing JWT_SECRET is deliberately not fatal: the server falls back to
// DefaultJWTSecret so the process always starts. The warning is the only
// guard rail, including in production.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.DatabasePath == "" {
		return errors.New("DATABASE_PATH is required")
	}

	if c.JWTSecret == "" {
		c.JWTSecret = DefaultJWTSecret
	}

	isProduction := c.Env == "production" || c.Env == "prod"
	if c.JWTSecret == DefaultJWTSecret {
		if isProduction {
			log.Println("WARNING: JWT_SECRET is the built-in development default in production. Tokens signed with it are forgeable.")
		} else {
			log.Println("WARNING: JWT_SECRET not set; using the built-in development default")
		}
	} else if len(c.JWTSecret) < 32 {
		log.Println("WARNING: JWT_SECRET is shorter than 32 characters. Consider using a stronger secret for production.")
	}

	return nil
}
