package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort string
	Debug      bool

	// Catalog fixture override; empty means the embedded dataset
	CatalogFile string

	// Listing page size
	PageSize int
}

func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:  getEnv("PORT", "4000"),
		Debug:       getEnvBool("DEBUG", false),
		CatalogFile: getEnv("CATALOG_FILE", ""),
		PageSize:    getEnvInt("PAGE_SIZE", 6),
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = 6
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
	}
	return defaultValue
}
