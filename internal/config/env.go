package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	sessionSecret := os.Getenv("SESSION_SECRET")
	webhookURL := os.Getenv("WEBHOOK_URL")
	baseURL := os.Getenv("BASE_URL")
	environment := os.Getenv("ENVIRONMENT")

	// the ledger cannot fail open: without a store there is no quota
	// enforcement, so a missing database is a startup error
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		DatabaseURL:   databaseURL,
		JWTSecret:     jwtSecret,
		SessionSecret: sessionSecret,
		WebhookURL:    webhookURL,
		BaseURL:       baseURL,
		Environment:   environment,
	}, nil
}
