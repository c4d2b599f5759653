package reverb

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/fivetwenty-io/reverb-client/internal/constants"
	"github.com/tidwall/gjson"
)

// Response is the raw result of one API call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// JSON decodes the body into v. The body is treated as JSON whether it was
// declared application/json or application/hal+json.
func (r *Response) JSON(v interface{}) error {
	if len(r.Body) == 0 {
		return ErrEmptyResponseBody
	}

	err := json.Unmarshal(r.Body, v)
	if err != nil {
		return fmt.Errorf("parsing response body: %w", err)
	}

	return nil
}

// Get returns the value at a gjson path in the body.
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

// Message returns the body's "message" field, or "" when absent.
func (r *Response) Message() string {
	return r.Get(constants.MessageKey).String()
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// IsJSON reports whether the declared content type is one the API uses for JSON.
func (r *Response) IsJSON() bool {
	return IsJSONMediaType(r.Headers.Get(constants.HeaderContentType))
}

// IsJSONMediaType reports whether contentType is application/json or application/hal+json.
func IsJSONMediaType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == constants.MediaTypeJSON || mediaType == constants.MediaTypeHALJSON
}

// Links represents HAL links keyed by relation.
type Links map[string]Link

// Link represents a single HAL link.
type Link struct {
	Href   string `json:"href"             mapstructure:"href"             yaml:"href"`
	Method string `json:"method,omitempty" mapstructure:"method,omitempty" yaml:"method,omitempty"`
}

// Self returns the self link href.
func (l Links) Self() string {
	return l[constants.SelfRel].Href
}

// Money is a price as the API renders it.
type Money struct {
	Amount   string `json:"amount"   mapstructure:"amount"   yaml:"amount"`
	Currency string `json:"currency" mapstructure:"currency" yaml:"currency"`
}

// Listing is the typed view of a listing resource.
type Listing struct {
	ID          int    `json:"id,omitempty"          mapstructure:"id,omitempty"          yaml:"id,omitempty"`
	Make        string `json:"make"                  mapstructure:"make"                  yaml:"make"`
	Model       string `json:"model"                 mapstructure:"model"                 yaml:"model"`
	Title       string `json:"title,omitempty"       mapstructure:"title,omitempty"       yaml:"title,omitempty"`
	SKU         string `json:"sku,omitempty"         mapstructure:"sku,omitempty"         yaml:"sku,omitempty"`
	Description string `json:"description,omitempty" mapstructure:"description,omitempty" yaml:"description,omitempty"`
	Price       *Money `json:"price,omitempty"       mapstructure:"price,omitempty"       yaml:"price,omitempty"`
	Links       Links  `json:"_links,omitempty"      mapstructure:"_links,omitempty"      yaml:"_links,omitempty"`
}

// Webhook is the typed view of a webhook registration.
type Webhook struct {
	URL   string `json:"url"              mapstructure:"url"              yaml:"url"`
	Topic string `json:"topic"            mapstructure:"topic"            yaml:"topic"`
	Links Links  `json:"_links,omitempty" mapstructure:"_links,omitempty" yaml:"_links,omitempty"`
}

// WebhookRegistration is the body of a webhook registration request.
type WebhookRegistration struct {
	URL   string `json:"url"`
	Topic string `json:"topic"`
}

// Credentials is the body of an email authentication request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
