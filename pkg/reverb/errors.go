package reverb

import "errors"

// ErrorKind distinguishes the failure classes the client intercepts.
type ErrorKind int

const (
	// KindNotAuthorized is returned for HTTP 401 and 403.
	KindNotAuthorized ErrorKind = iota + 1

	// KindServiceUnavailable is returned for HTTP 503.
	KindServiceUnavailable
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindNotAuthorized:
		return "NotAuthorized"
	case KindServiceUnavailable:
		return "ServiceUnavailable"
	default:
		return "Unknown"
	}
}

// APIError is returned by every request that the API answers with 401, 403 or 503.
// Any other status is handed back to the caller in the Response.
type APIError struct {
	Kind       ErrorKind `json:"kind"        yaml:"kind"`
	StatusCode int       `json:"status_code" yaml:"status_code"`
	Message    string    `json:"message"     yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Is reports whether target is an *APIError of the same kind, so the sentinels
// below match any status code and message.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrNotAuthorized      = &APIError{Kind: KindNotAuthorized, Message: "not authorized"}
	ErrServiceUnavailable = &APIError{Kind: KindServiceUnavailable, Message: "service unavailable"}
)

// Common static errors that can be wrapped with context.
var (
	ErrMissingSelfLink   = errors.New("resource has no _links.self.href")
	ErrNotAnObject       = errors.New("resource JSON is not an object")
	ErrNoClient          = errors.New("resource has no client to send updates with")
	ErrConfigRequired    = errors.New("config is required")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrEmptyResponseBody = errors.New("response body is empty")
)

// NewNotAuthorizedError builds a KindNotAuthorized error.
func NewNotAuthorizedError(statusCode int, message string) *APIError {
	return &APIError{Kind: KindNotAuthorized, StatusCode: statusCode, Message: message}
}

// NewServiceUnavailableError builds a KindServiceUnavailable error.
func NewServiceUnavailableError(statusCode int, message string) *APIError {
	return &APIError{Kind: KindServiceUnavailable, StatusCode: statusCode, Message: message}
}

// IsNotAuthorized checks if the error is a not authorized error.
func IsNotAuthorized(err error) bool {
	return errorKind(err) == KindNotAuthorized
}

// IsServiceUnavailable checks if the error is a service unavailable error.
func IsServiceUnavailable(err error) bool {
	return errorKind(err) == KindServiceUnavailable
}

func errorKind(err error) ErrorKind {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}

	return 0
}
