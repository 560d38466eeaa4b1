package config

import (
	"os"
	"time"

	"go.uber.org/zap"
)

// Config holds the runtime configuration loaded from environment variables.
// It is built once in main and injected; no other package reads the
// environment directly.
type Config struct {
	Env  string
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr string

	JWTSecret string
	TokenTTL  time.Duration
}

// Load returns configuration populated from environment variables with the
// documented fallbacks.
func Load() Config {
	return Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "5000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "attendance_user"),
		DBPassword: getEnv("DB_PASSWORD", "123456"),
		DBName:     getEnv("DB_NAME", "attendance_tracker"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		JWTSecret: getEnv("JWT_SECRET", "employee-attendance-tracker-secret-key-2024"),
		TokenTTL:  durationEnv("TOKEN_TTL", 24*time.Hour),
	}
}

// IsProduction reports whether the app runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		zap.L().Warn("invalid duration, using fallback",
			zap.String("key", key), zap.String("value", val), zap.Duration("fallback", fallback))
		return fallback
	}
	return d
}
