//go:build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/fivetwenty-io/reverb-client/pkg/reverb"
	"github.com/fivetwenty-io/reverb-client/pkg/reverbclient"
	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for sandbox integration tests.
type TestConfig struct {
	BaseURL       string
	BasicUsername string
	BasicPassword string
	Token         string
	Email         string
	Password      string
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	baseURL := os.Getenv("REVERB_SANDBOX_URL")
	if baseURL == "" {
		baseURL = "https://sandbox.reverb.com"
	}

	return &TestConfig{
		BaseURL:       baseURL,
		BasicUsername: os.Getenv("REVERB_SANDBOX_USERNAME"),
		BasicPassword: os.Getenv("REVERB_SANDBOX_PASSWORD"),
		Token:         os.Getenv("REVERB_TEST_API_TOKEN"),
		Email:         os.Getenv("REVERB_TEST_EMAIL"),
		Password:      os.Getenv("REVERB_TEST_PASSWORD"),
	}
}

// SkipIfMissingConfig skips the test when no sandbox token is configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Token == "" {
		t.Skip("REVERB_TEST_API_TOKEN not set, skipping integration test")
	}
}

// NewClient builds a sandbox client from config.
func (config *TestConfig) NewClient(t *testing.T) reverb.Client {
	t.Helper()

	clientConfig := &reverb.Config{
		BaseURL:   config.BaseURL,
		AuthToken: config.Token,
	}

	if config.BasicUsername != "" {
		clientConfig.BasicAuth = &reverb.BasicAuth{
			Username: config.BasicUsername,
			Password: config.BasicPassword,
		}
	}

	client, err := reverbclient.New(clientConfig)
	require.NoError(t, err)

	return client
}

// GenerateTestName creates a unique name with the given prefix.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
