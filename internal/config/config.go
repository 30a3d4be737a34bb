// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	HTTPAddr string

	PostgresDSN string

	RedisAddr string
	RedisPass string
	RedisDB   int

	BatchSize      int
	BaseDailyRate  float64
	CacheTTL       time.Duration
	PersistTimeout time.Duration
}

func Load() *AppConfig {
	return &AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		PostgresDSN: buildDSN(),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),
		RedisDB:   getEnvInt("REDIS_DB", 0),

		BatchSize:      getEnvInt("BATCH_SIZE", 5000),
		BaseDailyRate:  getEnvFloat("BASE_DAILY_RATE", 0),
		CacheTTL:       time.Duration(getEnvInt("CACHE_TTL_SECONDS", 86400)) * time.Second,
		PersistTimeout: time.Duration(getEnvInt("PERSIST_TIMEOUT_SECONDS", 0)) * time.Second,
	}
}

func buildDSN() string {
	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("POSTGRES_USER", "thelook_user"),
		getEnv("POSTGRES_PASSWORD", "thelook_pass"),
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_DB", "thelook_db"),
		getEnv("POSTGRES_SSLMODE", "disable"),
	)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
