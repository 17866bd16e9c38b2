package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultDSN = "host=localhost port=5432 dbname=apilabs_banking user=postgres password=postgres sslmode=disable"
const defaultPort = "3000"
const defaultJWTSecret = "your-secret-key-change-in-production"
const defaultMigrationsDir = "migrations"
const defaultNATSURL = "nats://localhost:4222"
const defaultTokenTTL = 24 * time.Hour

type Config struct {
	Port          string
	DatabaseDSN   string
	MigrationsDir string
	JWTSecret     string
	TokenTTL      time.Duration
	NATSURL       string
}

func Load() (Config, error) {
	cfg := Config{
		Port:          envOrDefault("PORT", defaultPort),
		DatabaseDSN:   envOrDefault("DATABASE_DSN", defaultDSN),
		MigrationsDir: envOrDefault("MIGRATIONS_DIR", defaultMigrationsDir),
		JWTSecret:     envOrDefault("JWT_SECRET", defaultJWTSecret),
		TokenTTL:      defaultTokenTTL,
		NATSURL:       envOrDefault("NATS_URL", defaultNATSURL),
	}

	if raw := strings.TrimSpace(os.Getenv("TOKEN_TTL_HOURS")); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err == nil && hours > 0 {
			cfg.TokenTTL = time.Duration(hours) * time.Hour
		}
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
