package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath           string
	ServerPort       string
	LogLevel         string
	BalancePath      string
	NarrationBaseURL string
	NarrationAPIKey  string
}

func Load() (*Config, error) {
	// a missing .env is fine; the environment wins either way
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:           getEnv("DB_PATH", "booker.db"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		BalancePath:      getEnv("BALANCE_PATH", ""),
		NarrationBaseURL: getEnv("NARRATION_BASE_URL", ""),
		NarrationAPIKey:  getEnv("NARRATION_API_KEY", ""),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
