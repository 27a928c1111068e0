package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURI   string
	ListenAddr    string
	TelegramToken string
	DigestCron    string
	AIAPIKey      string
	AIBaseURL     string
	AIModel       string
	ColorsFile    string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional in production
	}

	return &Config{
		DatabaseURI:   os.Getenv("DATABASE_URI"),
		ListenAddr:    getEnvOrDefault("LISTEN_ADDR", ":8080"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DigestCron:    getEnvOrDefault("DIGEST_CRON", "0 7 * * *"),
		AIAPIKey:      os.Getenv("AI_API_KEY"),
		AIBaseURL:     getEnvOrDefault("AI_BASE_URL", "https://openrouter.ai/api/v1"),
		AIModel:       getEnvOrDefault("AI_MODEL", "openai/gpt-4o-mini"),
		ColorsFile:    os.Getenv("COLORS_FILE"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
