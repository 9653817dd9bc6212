package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type envConfig struct {
	APP_PORT       string
	GCP_PROJECT_ID string
	LOG_FILE_PATH  string
	LOG_LEVEL      string
	SEED_FILE      string
	// HOUR_PIXELS is the grid scale; the 80px reference value is a
	// configuration constant, not a magic literal.
	HOUR_PIXELS float64
}

// DefaultEnvConfig holds the environment configuration loaded at startup.
var DefaultEnvConfig *envConfig

// LoadEnvConfig reads .env (when present) and the process environment into
// DefaultEnvConfig, applying defaults in one place.
func LoadEnvConfig() error {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &envConfig{
		APP_PORT:       getEnv("APP_PORT", "8080"),
		GCP_PROJECT_ID: getEnv("GCP_PROJECT_ID", "weekcal-local"),
		LOG_FILE_PATH:  getEnv("LOG_FILE_PATH", ""),
		LOG_LEVEL:      getEnv("LOG_LEVEL", "info"),
		SEED_FILE:      getEnv("SEED_FILE", ""),
		HOUR_PIXELS:    getEnvFloat("HOUR_PIXELS", 80),
	}

	DefaultEnvConfig = cfg
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return fallback
}
