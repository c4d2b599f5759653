package reverbclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/reverb-client/internal/client"
	"github.com/fivetwenty-io/reverb-client/internal/constants"
	"github.com/fivetwenty-io/reverb-client/pkg/reverb"
	"github.com/go-playground/validator/v10"
)

// New creates a new Reverb API client. config is copied and normalised
// before use; the caller's value is left untouched.
func New(config *reverb.Config) (reverb.Client, error) {
	if config == nil {
		return nil, reverb.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = NormalizeBaseURL(config.BaseURL)

	err := validateConfig(&normalized)
	if err != nil {
		return nil, err
	}

	client, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NormalizeBaseURL defaults an empty URL to the production host, adds an
// https:// scheme when none is given and trims a trailing slash.
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return constants.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

func validateConfig(config *reverb.Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	err := validate.Struct(config)
	if err != nil {
		return fmt.Errorf("%w: %w", reverb.ErrInvalidConfig, err)
	}

	// Only allow insecure TLS in explicit development environments
	if config.SkipTLSVerify && !isDevelopmentEnvironment() {
		return fmt.Errorf("%w: %w", reverb.ErrInvalidConfig, constants.ErrSkipTLSOnlyInDev)
	}

	return nil
}

// isDevelopmentEnvironment checks if we're in a development environment.
func isDevelopmentEnvironment() bool {
	devMode := os.Getenv(constants.DevModeEnv)

	return devMode == "true" || devMode == "1"
}

// NewWithToken creates a new client that sends token as X-Auth-Token.
func NewWithToken(baseURL, token string) (reverb.Client, error) {
	return New(&reverb.Config{
		BaseURL:   baseURL,
		AuthToken: token,
	})
}

// NewWithOAuthToken creates a new client that sends token as a bearer token.
func NewWithOAuthToken(baseURL, token string) (reverb.Client, error) {
	return New(&reverb.Config{
		BaseURL:    baseURL,
		OAuthToken: token,
	})
}

// NewSandbox creates a client for the sandbox host, which sits behind HTTP
// basic auth in addition to the usual token.
func NewSandbox(username, password, token string) (reverb.Client, error) {
	return New(&reverb.Config{
		BaseURL:   constants.SandboxBaseURL,
		AuthToken: token,
		BasicAuth: &reverb.BasicAuth{
			Username: username,
			Password: password,
		},
	})
}
