package constants

import "time"

// API endpoints.
const (
	// DefaultBaseURL is the production Reverb host.
	DefaultBaseURL = "https://reverb.com"

	// SandboxBaseURL is the Reverb sandbox host, gated by HTTP basic auth.
	SandboxBaseURL = "https://sandbox.reverb.com"

	// AuthEmailPath exchanges an email and password for a token.
	AuthEmailPath = "/api/auth/email"

	// ListingsPath creates listings.
	ListingsPath = "/api/listings"

	// MyListingsPath searches the authenticated seller's listings.
	MyListingsPath = "/api/my/listings"

	// WebhookRegistrationsPath lists and creates webhook registrations.
	WebhookRegistrationsPath = "/api/webhooks/registrations"
)

// Listing search states.
const (
	ListingStateAll   = "all"
	ListingStateDraft = "draft"
)

// HAL+JSON field names.
const (
	ListingsKey      = "listings"
	RegistrationsKey = "registrations"
	MessageKey       = "message"
	SelfRel          = "self"
)

// Media types and headers.
const (
	// MediaTypeHALJSON is sent as both Content-Type and Accept.
	MediaTypeHALJSON = "application/hal+json"

	// MediaTypeJSON is accepted as an alias of MediaTypeHALJSON when parsing.
	MediaTypeJSON = "application/json"

	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderAcceptVersion = "Accept-Version"
	HeaderAuthToken     = "X-Auth-Token"
	HeaderAuthorization = "Authorization"
	HeaderUserAgent     = "User-Agent"
)

// Default messages.
const (
	// DefaultNotAuthorizedMessage is used when a 401/403 body carries no message.
	DefaultNotAuthorizedMessage = "Reverb authorization failed. Please check your X-Auth-Token header."

	// DefaultServiceUnavailableMessage is used for every 503 response.
	DefaultServiceUnavailableMessage = "Reverb is temporarily unavailable. Please try again later."

	// DefaultUserAgent identifies this client.
	DefaultUserAgent = "reverb-client-go"
)

// HTTP and network timeouts.
const (
	// ShortHTTPTimeout is used by the CLI when no timeout is configured.
	ShortHTTPTimeout = 30 * time.Second

	// DefaultRetryWaitMin is the minimum wait between connection retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between connection retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Output formatting.
const (
	// JSONIndentSize is the indent width for json and yaml output.
	JSONIndentSize = 2
)

// Environment.
const (
	// DevModeEnv must be "true" or "1" for SkipTLSVerify to take effect.
	DevModeEnv = "REVERB_DEV_MODE"

	// EnvPrefix is the viper environment prefix used by the CLI.
	EnvPrefix = "REVERB"
)

// CLI output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)
