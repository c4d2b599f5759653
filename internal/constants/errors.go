package constants

import "errors"

// Configuration errors.
var (
	ErrBaseURLRequired  = errors.New("base URL is required")
	ErrSkipTLSOnlyInDev = errors.New("skipTLS is only allowed in development environments (set " + DevModeEnv + "=true)")
)

// Request errors.
var (
	ErrEncodeBody   = errors.New("failed to encode request body")
	ErrBuildRequest = errors.New("failed to build request")
)

// CLI errors.
var (
	ErrSKURequired             = errors.New("--sku is required")
	ErrURLRequired             = errors.New("--url is required")
	ErrTopicRequired           = errors.New("--topic is required")
	ErrEmailRequired           = errors.New("email is required")
	ErrNoAttributes            = errors.New("no attributes given, use --file or --set")
	ErrInvalidAssignment       = errors.New("invalid assignment, expected path=value")
	ErrListingNotFound         = errors.New("listing not found")
	ErrWebhookNotFound         = errors.New("webhook not found")
	ErrUnexpectedStatus        = errors.New("unexpected response status")
	ErrInvalidHeaderAssignment = errors.New("invalid header, expected Name=value")
)
