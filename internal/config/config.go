package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config holds all runtime configuration loaded from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTExpHours int64
	AppEnv      string
	ClientURL   string
}

// Load reads configuration from environment variables.
// DATABASE_URL and JWT_SECRET are mandatory; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTExpHours: getEnvAsInt64("JWT_EXPIRATION_HOURS", 168), // 7 days
		AppEnv:      getEnv("APP_ENV", EnvDevelopment),
		ClientURL:   os.Getenv("CLIENT_URL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set in environment")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set in environment")
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, EnvProduction)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
