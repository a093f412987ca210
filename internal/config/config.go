package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultProviderTimeout = 15 * time.Second

type Config struct {
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	AppPort         string
	AppEnv          string
	ProviderBaseURL string
	ProviderTimeout time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:          os.Getenv("DB_HOST"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBPort:          os.Getenv("DB_PORT"),
		AppPort:         getEnv("APP_PORT", "8080"),
		AppEnv:          os.Getenv("APP_ENV"),
		ProviderBaseURL: getEnv("PROVIDER_BASE_URL", "https://core.piastrix.com"),
		ProviderTimeout: getTimeout("PROVIDER_TIMEOUT_SECONDS"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getTimeout reads a timeout in whole seconds. A provider call must never
// hang without bound, so a missing or malformed value falls back to the
// default rather than zero.
func getTimeout(key string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultProviderTimeout
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return defaultProviderTimeout
	}
	return time.Duration(secs) * time.Second
}
