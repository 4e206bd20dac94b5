// Package service exposes the diagram generators over HTTP: it fetches
// component records from the inventory backend and serves rendered SVG,
// so browser clients embed diagrams with a plain <img> or fetch.
package service

import (
	"os"
	"strconv"
)

// Config holds the HTTP service settings, loaded from the environment.
type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int
	BackendURL   string
}

// Load reads configuration from environment variables, falling back to
// development defaults. BACKEND_URL points at the inventory REST API
// the diagram records come from.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
		BackendURL:   getEnv("BACKEND_URL", "http://localhost:8000"),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
