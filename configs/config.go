package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBSource string
}

func LoadConfig() *Config {
	// .env is optional; defaults cover the single-machine party setup
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using defaults")
	}

	return &Config{
		Port:     getEnv("PORT", "3001"),
		DBSource: getEnv("DB_SOURCE", "bar.db"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
