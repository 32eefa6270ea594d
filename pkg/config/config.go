package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	// Job search upstream (JSearch on RapidAPI)
	RapidAPIKey        string
	JSearchBaseURL     string
	JSearchTimeoutSecs int

	// Headless Chrome binary used by the PDF exporter; empty means autodetect.
	ChromePath string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecret:          getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:          getEnv("JWT_ISSUER", "resume-builder"),
		JWTTTLMinutes:      getEnvInt("JWT_TTL_MINUTES", 60),
		RapidAPIKey:        os.Getenv("RAPIDAPI_KEY"),
		JSearchBaseURL:     getEnv("JSEARCH_BASE_URL", "https://jsearch.p.rapidapi.com"),
		JSearchTimeoutSecs: getEnvInt("JSEARCH_TIMEOUT_SECONDS", 15),
		ChromePath:         os.Getenv("CHROME_PATH"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
