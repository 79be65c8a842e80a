package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the documented fallback used when JWT_SECRET is not
// set. Running with it in production is insecure; main logs a warning
// instead of refusing to start so local setups keep working.
const DefaultJWTSecret = "supersecret"

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	DatabaseURL string
	RedisURL    string

	JWTSecret     string
	TokenTTLHours int

	// Kafka event publishing; events are logged locally when unset.
	KafkaBrokers string
	KafkaTopic   string

	// When true, feedback and mentor comments are only accepted on sessions
	// that have been accepted. Off by default to match the documented
	// behavior of the original workflow.
	FeedbackRequiresAccepted bool
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments rely on the environment.
	_ = godotenv.Load()

	cfg := &Config{
		Port:                     getEnv("PORT", "8080"),
		Environment:              getEnv("ENVIRONMENT", "development"),
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		RedisURL:                 os.Getenv("REDIS_URL"),
		JWTSecret:                getEnv("JWT_SECRET", DefaultJWTSecret),
		TokenTTLHours:            getEnvInt("TOKEN_TTL_HOURS", 24),
		KafkaBrokers:             os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:               getEnv("KAFKA_TOPIC", "mentorship.sessions"),
		FeedbackRequiresAccepted: getEnvBool("FEEDBACK_REQUIRES_ACCEPTED", false),
	}

	switch getEnv("LOG_LEVEL", "info") {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	default:
		cfg.LogLevel = slog.LevelInfo
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

// UsingDefaultSecret reports whether the process-wide signing secret is the
// insecure literal fallback.
func (c *Config) UsingDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
