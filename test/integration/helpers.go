//go:build integration
// +build integration

package integration

import (
	"os"
	"testing"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
	"github.com/excelsior-io/mapi-client/pkg/mclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	PublicKey  string
	PrivateKey string
	BaseURL    string
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		PublicKey:  os.Getenv("MAPI_PUBLIC_KEY"),
		PrivateKey: os.Getenv("MAPI_PRIVATE_KEY"),
		BaseURL:    os.Getenv("MAPI_BASE_URL"),
	}
}

// SkipIfMissingConfig skips the test when no live credentials are configured
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.PublicKey == "" || c.PrivateKey == "" {
		t.Skip("Skipping integration test: MAPI_PUBLIC_KEY and MAPI_PRIVATE_KEY must be set")
	}
}

// NewClient builds a client against the live gateway
func (c *TestConfig) NewClient(t *testing.T, autoQuery bool) marvel.Client {
	t.Helper()

	client, err := mclient.New(&marvel.Config{
		BaseURL:    c.BaseURL,
		PublicKey:  c.PublicKey,
		PrivateKey: c.PrivateKey,
		AutoQuery:  autoQuery,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	return client
}
