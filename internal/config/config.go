package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	RiotAPIKey    string
	DBPath        string
	ServerPort    string
	LogLevel      string
	DefaultRegion string
}

func Load() (*Config, error) {
	// .env is optional; deployed environments set variables directly
	_ = godotenv.Load()

	cfg := &Config{
		RiotAPIKey:    getEnv("RIOT_API_KEY", ""),
		DBPath:        getEnv("DB_PATH", "league.db"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DefaultRegion: getEnv("DEFAULT_REGION", "na1"),
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
