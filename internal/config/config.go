package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dharmasatrya/travelnesia/internal/history"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type Config struct {
	AppEnv         string
	Port           string
	HistoryBackend string
	Redis          history.RedisConfig
	SearchLatency  time.Duration
	BookingLatency time.Duration
	NodeID         int64
	RateLimit      RateLimitConfig
}

// Load reads the environment, after merging an optional .env file into it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}
	return FromEnv()
}

// FromEnv applies defaults to unset keys. Set but malformed values are errors.
func FromEnv() (*Config, error) {
	var errs []error

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		HistoryBackend: getEnv("HISTORY_BACKEND", BackendMemory),
		Redis: history.RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0, &errs),
			TTL:      getEnvDuration("REDIS_TTL", 30*24*time.Hour, &errs),
		},
		SearchLatency:  getEnvDuration("SEARCH_LATENCY", 1500*time.Millisecond, &errs),
		BookingLatency: getEnvDuration("BOOKING_LATENCY", 2000*time.Millisecond, &errs),
		NodeID:         int64(getEnvInt("NODE_ID", 1, &errs)),
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvFloat("RATE_LIMIT_RPS", 10, &errs),
			Burst:             getEnvInt("RATE_LIMIT_BURST", 20, &errs),
		},
	}

	if cfg.HistoryBackend != BackendMemory && cfg.HistoryBackend != BackendRedis {
		errs = append(errs, errors.New("invalid env HISTORY_BACKEND: "+cfg.HistoryBackend))
	}
	if cfg.NodeID < 0 || cfg.NodeID > 1023 {
		errs = append(errs, errors.New("invalid env NODE_ID: must be within 0-1023"))
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 || cfg.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("invalid env RATE_LIMIT_RPS/RATE_LIMIT_BURST: must be positive"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64, errs *[]error) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return defaultValue
	}
	return f
}

func getEnvDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return defaultValue
	}
	return duration
}
