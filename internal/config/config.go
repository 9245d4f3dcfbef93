// Package config reads process configuration from the environment. A .env
// file is loaded first when present, so local runs need no exported vars.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	RedisAddr     string
	RedisPassword string

	RateLimitMax    int
	RateLimitWindow time.Duration

	SMTPHost  string
	SMTPUser  string
	SMTPPass  string
	FromEmail string
}

// Load reads the environment and fails fast on the two settings the server
// cannot run without.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   time.Duration(getint("TOKEN_TTL_HOURS", 72)) * time.Hour,
		BcryptCost: getint("BCRYPT_COST", 0),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		RateLimitMax:    getint("RATE_LIMIT_MAX", 20),
		RateLimitWindow: time.Duration(getint("RATE_LIMIT_WINDOW_SEC", 60)) * time.Second,

		SMTPHost:  os.Getenv("SMTP_HOST"),
		SMTPUser:  os.Getenv("SMTP_USER"),
		SMTPPass:  os.Getenv("SMTP_PASS"),
		FromEmail: os.Getenv("FROM_EMAIL"),
	}

	if cfg.DatabaseDSN == "" {
		return nil, errors.New("DATABASE_DSN required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET required")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
