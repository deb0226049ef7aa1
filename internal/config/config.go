package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all process-wide configuration, read once at startup.
type Config struct {
	AppPort     string
	DatabaseDSN string
	JWTSecret   string
	RabbitMQURL string
}

// Load reads configuration from the environment. DATABASE_DSN and
// JWT_SECRET have no defaults on purpose: running with an implicit
// signing secret or an unknown database is a startup error, not a
// warning. RABBITMQ_URL is optional; an empty value disables event
// publishing.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":3001")
	v.AutomaticEnv()

	cfg := &Config{
		AppPort:     v.GetString("APP_PORT"),
		DatabaseDSN: v.GetString("DATABASE_DSN"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		RabbitMQURL: v.GetString("RABBITMQ_URL"),
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
