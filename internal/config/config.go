// Package config loads the application configuration from the environment
// once at startup.
package config

import (
	"os"
)

type Config struct {
	// DatabaseURL is the postgres DSN.
	DatabaseURL string
	// SessionSecret signs the session cookie.
	SessionSecret string
	// Port the HTTP server listens on.
	Port string
}

// Load reads the configuration, falling back to local-dev defaults.
func Load() *Config {
	return &Config{
		DatabaseURL:   getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=crudboard port=5432 sslmode=disable"),
		SessionSecret: getEnv("SESSION_SECRET", "secret_key_change_me"),
		Port:          getEnv("PORT", "8080"),
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
