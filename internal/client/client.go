package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/reverb-client/internal/auth"
	"github.com/fivetwenty-io/reverb-client/internal/constants"
	"github.com/fivetwenty-io/reverb-client/internal/http"
	"github.com/fivetwenty-io/reverb-client/pkg/reverb"
)

// Client implements the reverb.Client interface.
type Client struct {
	httpClient    *http.Client
	authenticator *auth.Authenticator
	baseURL       string
}

// createAuthenticator maps the credential fields of config onto an Authenticator.
func createAuthenticator(config *reverb.Config) *auth.Authenticator {
	authConfig := &auth.Config{
		AuthToken:   config.AuthToken,
		OAuthToken:  config.OAuthToken,
		TokenSource: config.OAuthTokenSource,
	}

	if config.BasicAuth != nil {
		authConfig.Username = config.BasicAuth.Username
		authConfig.Password = config.BasicAuth.Password
	}

	return auth.NewAuthenticator(authConfig)
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *reverb.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.APIVersion != "" {
		httpOpts = append(httpOpts, http.WithAPIVersion(config.APIVersion))
	}

	if len(config.DefaultHeaders) > 0 {
		httpOpts = append(httpOpts, http.WithDefaultHeaders(config.DefaultHeaders))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.SkipTLSVerify {
		httpOpts = append(httpOpts, http.WithInsecureSkipVerify(true))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Reverb API client. config is expected to be normalised
// already; see reverbclient.New.
func New(config *reverb.Config) (*Client, error) {
	if config == nil {
		return nil, reverb.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, constants.ErrBaseURLRequired
	}

	authenticator := createAuthenticator(config)
	httpClient := http.NewClient(config.BaseURL, authenticator, createHTTPClientOptions(config)...)

	return &Client{
		httpClient:    httpClient,
		authenticator: authenticator,
		baseURL:       httpClient.BaseURL(),
	}, nil
}

// BaseURL returns the host relative paths are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AuthScheme reports which token header the client sends.
func (c *Client) AuthScheme() auth.Scheme {
	return c.authenticator.Scheme()
}

// DefaultHeaders returns a copy of the headers sent with every request.
func (c *Client) DefaultHeaders() map[string]string {
	return c.httpClient.DefaultHeaders()
}

// Authenticate implements reverb.AuthClient.Authenticate.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*reverb.Response, error) {
	resp, err := c.httpClient.Post(ctx, constants.AuthEmailPath, &reverb.Credentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return resp, fmt.Errorf("authenticating: %w", err)
	}

	return resp, nil
}

// Get implements reverb.RequestClient.Get.
func (c *Client) Get(ctx context.Context, path string) (*reverb.Response, error) {
	return c.httpClient.Get(ctx, path, nil)
}

// Post implements reverb.RequestClient.Post.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*reverb.Response, error) {
	return c.httpClient.Post(ctx, path, body)
}

// Put implements reverb.RequestClient.Put.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*reverb.Response, error) {
	return c.httpClient.Put(ctx, path, body)
}

// Delete implements reverb.RequestClient.Delete.
func (c *Client) Delete(ctx context.Context, path string, body interface{}) (*reverb.Response, error) {
	return c.httpClient.Delete(ctx, path, body)
}

// AddDefaultHeader implements reverb.RequestClient.AddDefaultHeader.
func (c *Client) AddDefaultHeader(headers map[string]string) {
	c.httpClient.AddDefaultHeader(headers)
}

// loggerAdapter adapts reverb.Logger to http.Logger.
type loggerAdapter struct {
	logger reverb.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

var _ reverb.Client = (*Client)(nil)
