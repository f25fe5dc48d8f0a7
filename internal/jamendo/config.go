// Package jamendo provides a Jamendo API client for tag-based track search.
package jamendo

import (
	"errors"
	"os"
)

// ErrMissingClientID is returned when JAMENDO_CLIENT_ID is not set.
var ErrMissingClientID = errors.New("missing JAMENDO_CLIENT_ID environment variable")

// Config holds Jamendo API configuration.
type Config struct {
	ClientID string
}

// LoadConfig reads Jamendo configuration from environment variables.
// Returns ErrMissingClientID if JAMENDO_CLIENT_ID is not set.
func LoadConfig() (*Config, error) {
	clientID := os.Getenv("JAMENDO_CLIENT_ID")
	if clientID == "" {
		return nil, ErrMissingClientID
	}
	return &Config{ClientID: clientID}, nil
}
