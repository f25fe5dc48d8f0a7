// Package huggingface provides a client for the Hugging Face Inference API,
// covering text classification, token classification and chat completions.
package huggingface

import (
	"errors"
	"os"
)

// ErrMissingAPIKey is returned when HUGGINGFACE_API_KEY is not set.
var ErrMissingAPIKey = errors.New("missing HUGGINGFACE_API_KEY environment variable")

// Config holds Hugging Face API configuration.
type Config struct {
	APIKey string
}

// LoadConfig reads Hugging Face configuration from environment variables.
// Returns ErrMissingAPIKey if HUGGINGFACE_API_KEY is not set.
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv("HUGGINGFACE_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Config{APIKey: apiKey}, nil
}
