package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string

	DEEPL_API_KEY string
	DEEPL_API_URL string

	// Key-value file holding the IGDB/Twitch credentials (keys CLI and SECRET).
	TWITCH_CREDENTIALS_FILE string

	// "sync" runs translations inline, "queue" defers them to the worker.
	TRANSLATE_MODE string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	GOOGLE_CLIENT_ID = mustEnv("GOOGLE_CLIENT_ID")
	GOOGLE_CLIENT_SECRET = mustEnv("GOOGLE_CLIENT_SECRET")
	GOOGLE_REDIRECT_URL = mustEnv("GOOGLE_REDIRECT_URL")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")

	DEEPL_API_KEY = mustEnv("DEEPL_API_KEY")
	DEEPL_API_URL = getEnv("DEEPL_API_URL", "https://api-free.deepl.com/v2/translate")

	TWITCH_CREDENTIALS_FILE = getEnv("TWITCH_CREDENTIALS_FILE", ".twitch")
	TRANSLATE_MODE = getEnv("TRANSLATE_MODE", "sync")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
