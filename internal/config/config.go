package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const prodString = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	HTTPAddr          string
	DBDSN             string
	BasicAuthUsername string
	BasicAuthPassHash string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Allowed CORS origins in production (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == prodString

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// Basic auth credentials are required; the password is supplied as a
	// bcrypt hash so the plaintext never reaches the environment.
	cfg.BasicAuthUsername = os.Getenv("BASIC_AUTH_USERNAME")
	if cfg.BasicAuthUsername == "" {
		return nil, fmt.Errorf("BASIC_AUTH_USERNAME is required")
	}
	cfg.BasicAuthPassHash = os.Getenv("BASIC_AUTH_PASSWORD_HASH")
	if cfg.BasicAuthPassHash == "" {
		return nil, fmt.Errorf("BASIC_AUTH_PASSWORD_HASH is required")
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
