package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read once at startup. A .env
// file in the working directory is honored; real environment
// variables win.
type Config struct {
	Addr            string
	DatabaseURL     string
	AnthropicAPIKey string
	AnthropicModel  string
	LogLevel        string
}

func Load() Config {
	_ = godotenv.Load() // missing .env is fine

	return Config{
		Addr:            getenv("ADDR", ":8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getenv("ANTHROPIC_MODEL", "claude-sonnet-4-5"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
