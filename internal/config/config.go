package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	defaultDatabaseURL = "rental.db"
	defaultListenAddr  = ":8080"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"
)

type Config struct {
	AppEnv      string
	DatabaseURL string
	ListenAddr  string
	JWTSecret   string
	JWTTTL      time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)

	cfg.JWTSecret = getEnv("JWT_SECRET", defaultJWTSecret)
	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("config: JWT_SECRET must be set in prod")
	}
	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("config: using default JWT_SECRET (dev only)")
	}

	ttlRaw := getEnv("JWT_TTL", defaultJWTTTL)
	ttl, err := time.ParseDuration(ttlRaw)
	if err != nil {
		return nil, fmt.Errorf("config: invalid JWT_TTL %q: %w", ttlRaw, err)
	}
	cfg.JWTTTL = ttl

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
