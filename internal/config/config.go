// Package config loads service configuration from the environment, with a
// .env file overlay for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the composition root needs to wire the service.
type Config struct {
	// BackendURL is the base URL of the hosted collection backend.
	BackendURL string

	// ServerPort is the port the HTTP server listens on.
	ServerPort string

	// SessionDBPath is the SQLite file backing the session fallback store.
	SessionDBPath string

	// CookieSecure marks the auth cookie Secure (set in production).
	CookieSecure bool

	// CORSOrigin is the allowed browser origin for the JSON API.
	CORSOrigin string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; it is optional and absent
// in production.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		BackendURL:    getEnvOrDefault("BACKEND_URL", "http://127.0.0.1:8090"),
		ServerPort:    getEnvOrDefault("SERVER_PORT", "8080"),
		SessionDBPath: getEnvOrDefault("SESSION_DB_PATH", "./data/sessions.db"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
		CORSOrigin:    getEnvOrDefault("CORS_ORIGIN", "*"),
	}
}

func getEnvOrDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
