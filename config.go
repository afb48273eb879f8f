package barte

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by NewClientFromEnv.
const (
	envAPIKey      = "BARTE_API_KEY"
	envEnvironment = "BARTE_ENVIRONMENT"
)

// NewClientFromEnv builds a client from the BARTE_API_KEY and
// BARTE_ENVIRONMENT variables. A .env file in the working directory is
// loaded first when present; real environment variables take priority.
// BARTE_ENVIRONMENT defaults to sandbox so that a missing value never
// points at production by accident.
func NewClientFromEnv(opts ...ClientOption) (*Client, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv(envAPIKey)
	if apiKey == "" {
		return nil, &ConfigError{Field: envAPIKey, Reason: "is required"}
	}
	environment := Environment(getEnv(envEnvironment, string(EnvironmentSandbox)))

	return NewClient(apiKey, environment, opts...)
}

// getEnv reads an environment variable, falling back to a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
