package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Every field is backed by an environment
// variable; development fallbacks keep the service runnable with no env at all.
type Config struct {
	Port           string // HTTP port to listen on
	DatabaseDSN    string // postgres DSN; empty means the local sqlite file
	SQLitePath     string // sqlite database file used when DatabaseDSN is empty
	APIKey         string // shared secret required by the delete endpoint
	AllowedOrigins string // extra CORS origin beyond the localhost default
	LogLevel       string // zap log level (debug/info/warn/error)
	GinMode        string // gin mode (debug/release)
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:           getenv("PORT", "8083"),
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
		SQLitePath:     getenv("SQLITE_PATH", "cafes.db"),
		APIKey:         getenv("API_KEY", "TopSecretAPIKey"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		GinMode:        os.Getenv("GIN_MODE"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
