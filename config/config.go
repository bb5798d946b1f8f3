package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds everything the server needs at startup. It is built once in
// main and passed down by reference; there are no package-level globals.
type Config struct {
	Env         string        // "production" enables gin release mode
	HTTPAddr    string        // listen address, e.g. ":3001"
	DatabaseURL string        // Postgres DSN
	JWTSecret   string        // HS256 signing secret
	TokenTTL    time.Duration // access token lifetime
	LogLevel    string        // debug / info / warn / error
}

// Load reads configuration from environment variables. godotenv.Load is
// expected to have run already so a local .env file is picked up too.
func Load() (*Config, error) {
	cfg := &Config{
		Env:         os.Getenv("ENV"),
		HTTPAddr:    ":3001",
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    time.Hour,
		LogLevel:    "info",
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.HTTPAddr = ":" + port
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "default-dev-secret-change-me"
	}

	return cfg, nil
}
