package reverb

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

// AuthClient exchanges credentials for a token.
type AuthClient interface {
	Authenticate(ctx context.Context, email, password string) (*Response, error)
}

// ListingsClient creates and looks up listings.
type ListingsClient interface {
	CreateListing(ctx context.Context, attributes interface{}) (*Response, error)
	// FindBySku returns the first listing matching sku in state, or nil when
	// nothing matches.
	FindBySku(ctx context.Context, sku, state string) (*Resource, error)
	FindListingBySku(ctx context.Context, sku string) (*Resource, error)
	FindDraft(ctx context.Context, sku string) (*Resource, error)
}

// WebhooksClient manages webhook registrations.
type WebhooksClient interface {
	CreateWebhook(ctx context.Context, url, topic string) (*Response, error)
	ListWebhooks(ctx context.Context) (*Response, error)
	// FindWebhook returns the registration for url, or nil when none exists.
	FindWebhook(ctx context.Context, url string) (*Resource, error)
}

// RequestClient exposes the generic verbs. Paths may be relative API paths or
// absolute hypermedia links.
type RequestClient interface {
	Get(ctx context.Context, path string) (*Response, error)
	Post(ctx context.Context, path string, body interface{}) (*Response, error)
	Put(ctx context.Context, path string, body interface{}) (*Response, error)
	Delete(ctx context.Context, path string, body interface{}) (*Response, error)
	// AddDefaultHeader merges headers into the set sent with every later request.
	AddDefaultHeader(headers map[string]string)
}

type Client interface {
	AuthClient
	ListingsClient
	WebhooksClient
	RequestClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// BasicAuth holds HTTP basic credentials, used to get past the sandbox gate.
type BasicAuth struct {
	Username string `validate:"required"`
	Password string
}

// Config represents client configuration for building a reverb.Client.
//
// # Authentication precedence
//
// Exactly one token header is sent:
//  1. AuthToken: sent as X-Auth-Token.
//  2. OAuthToken or OAuthTokenSource: sent as "Authorization: Bearer <token>".
//     OAuthTokenSource wins over OAuthToken when both are set.
//  3. Neither: no token header.
//
// BasicAuth is independent of the above. It is attached to the request URL
// and turned into a header by the transport only when no Authorization header
// is already present.
//
// # Timeouts and retries
//
// Deadlines come from the context passed to each call. Responses are never
// retried; RetryMax only covers connection failures and defaults to 0.
// SkipTLSVerify is only honoured when REVERB_DEV_MODE is "true" or "1".
type Config struct {
	// BaseURL: API host, e.g. "https://reverb.com". reverbclient.New defaults
	// it, trims a trailing slash and adds "https://" when no scheme is given.
	BaseURL string `validate:"required,url"`

	// AuthToken: legacy token sent as X-Auth-Token.
	AuthToken string
	// OAuthToken: static OAuth access token sent as a bearer token.
	OAuthToken string
	// OAuthTokenSource: optional source of bearer tokens, e.g. a refreshing
	// oauth2.Config token source.
	OAuthTokenSource oauth2.TokenSource
	// BasicAuth: optional sandbox credentials.
	BasicAuth *BasicAuth
	// APIVersion: sent as Accept-Version when set.
	APIVersion string
	// DefaultHeaders: extra headers sent with every request.
	DefaultHeaders map[string]string

	// Optional configurations
	// HTTPTimeout: client-wide timeout; zero leaves the transport default.
	HTTPTimeout time.Duration `validate:"gte=0"`
	// RetryMax: retries for connection failures only.
	RetryMax int `validate:"gte=0"`
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: logs each request and response when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// SkipTLSVerify: development only, see above.
	SkipTLSVerify bool
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
