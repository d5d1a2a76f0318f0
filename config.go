package main

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Env         string
	RedisURL    string
	DatabaseURL string

	GeminiAPIKey string
	GeminiModel  string
	AITimeout    time.Duration

	PaymentDelay time.Duration
	CartTTL      time.Duration
	CheckoutTTL  time.Duration
	SessionTTL   time.Duration

	CORSOrigins []string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("APP_ENV", "development"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", ""),
		AITimeout:    getDuration("AI_TIMEOUT", 30*time.Second),
		PaymentDelay: getDuration("PAYMENT_DELAY", 2500*time.Millisecond),
		CartTTL:      getDuration("CART_TTL", 30*24*time.Hour),
		CheckoutTTL:  getDuration("CHECKOUT_TTL", time.Hour),
		SessionTTL:   getDuration("SESSION_TTL", 7*24*time.Hour),
		CORSOrigins:  []string{getEnv("CORS_ORIGIN", "http://localhost:5173")},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
