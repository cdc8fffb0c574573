package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultBaseURL = "https://api.cleandudsdash.com/v1"

type Config struct {
	Environment string
	API         APIConfig
}

type APIConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Load reads configuration from the environment, loading a .env file first
// when one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		API: APIConfig{
			BaseURL: getEnv("DASHBOARD_API_BASE_URL", defaultBaseURL),
			Token:   getEnv("DASHBOARD_API_TOKEN", ""),
			Timeout: getDuration("HTTP_TIMEOUT", 30*time.Second),
		},
	}
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
	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}
