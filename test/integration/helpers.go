//go:build integration

package integration

import (
	"os"
	"testing"
	"time"

	"github.com/hamadhassan3/outseta-client-sub001/pkg/outsetaclient"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Domain    string
	APIKey    string
	APISecret string
	Username  string
	Password  string
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Domain:    os.Getenv("OUTSETA_DOMAIN"),
		APIKey:    os.Getenv("OUTSETA_API_KEY"),
		APISecret: os.Getenv("OUTSETA_API_SECRET"),
		Username:  os.Getenv("OUTSETA_USERNAME"),
		Password:  os.Getenv("OUTSETA_PASSWORD"),
	}
}

// SkipIfMissingConfig skips the test unless an API key is configured.
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.Domain == "" || c.APIKey == "" || c.APISecret == "" {
		t.Skip("OUTSETA_DOMAIN, OUTSETA_API_KEY or OUTSETA_API_SECRET not set, skipping integration test")
	}
}

// ClientConfig returns an API key client configuration.
func (c *TestConfig) ClientConfig() *outsetaclient.Config {
	return &outsetaclient.Config{
		Domain:     c.Domain,
		APIKey:     c.APIKey,
		APISecret:  c.APISecret,
		Timeout:    30 * time.Second,
		RequestIDs: true,
	}
}
