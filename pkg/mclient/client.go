// Package mclient provides the main entry point for creating Marvel API clients
package mclient

import (
	"strings"

	"github.com/excelsior-io/mapi-client/internal/client"
	"github.com/excelsior-io/mapi-client/pkg/marvel"
)

// New creates a new Marvel API client with the default HTTP transport.
func New(config *marvel.Config) (marvel.Client, error) {
	if config == nil {
		return nil, marvel.ErrConfigRequired
	}

	if config.PublicKey == "" {
		return nil, marvel.ErrMissingCredentials
	}

	// Normalize the gateway endpoint
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = marvel.DefaultBaseURL
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	cfg := *config
	cfg.BaseURL = baseURL

	return client.New(&cfg)
}

// NewWithKeys creates a client from an API key pair with default settings.
func NewWithKeys(publicKey, privateKey string) (marvel.Client, error) {
	return New(&marvel.Config{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	})
}

// NewWithAutoQuery creates a client from an API key pair with the link
// extension engine enabled.
func NewWithAutoQuery(publicKey, privateKey string) (marvel.Client, error) {
	return New(&marvel.Config{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
		AutoQuery:  true,
	})
}
