package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"finflow-backend/pkg/db"
)

// AppConfig holds all application-wide configuration.
type AppConfig struct {
	Env        string
	ServerPort string
	DB         db.Config

	JWTSecret string
	JWTTTL    time.Duration

	// Rate limiting is disabled when RedisAddr is empty.
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RateLimit       int64
	RateLimitWindow time.Duration
}

// LoadConfig reads configuration from the environment, with an optional .env
// overlay for local development. JWT_SECRET is the only required variable.
func LoadConfig() (*AppConfig, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	dbPort, err := intEnv("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	redisDB, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	rateLimit, err := intEnv("RATE_LIMIT", 10)
	if err != nil {
		return nil, err
	}
	rateWindow, err := intEnv("RATE_LIMIT_WINDOW_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	jwtTTLHours, err := intEnv("JWT_TTL_HOURS", 24)
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		Env:        stringEnv("APP_ENV", "development"),
		ServerPort: stringEnv("SERVER_PORT", "8080"),
		DB: db.Config{
			Host:     stringEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     stringEnv("DB_USER", "finflow"),
			Password: stringEnv("DB_PASSWORD", "finflow"),
			DBName:   stringEnv("DB_NAME", "finflow"),
			SSLMode:  stringEnv("DB_SSLMODE", "disable"),
		},
		JWTSecret:       jwtSecret,
		JWTTTL:          time.Duration(jwtTTLHours) * time.Hour,
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         redisDB,
		RateLimit:       int64(rateLimit),
		RateLimitWindow: time.Duration(rateWindow) * time.Second,
	}, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
