// Package http is the request pipeline shared by every API call: URL
// resolution, header composition, authentication, transport and response
// classification.
package http

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/reverb-client/internal/constants"
	"github.com/fivetwenty-io/reverb-client/pkg/reverb"
	"github.com/hashicorp/go-retryablehttp"
)

// Response is the raw result of a request.
type Response = reverb.Response

// Logger is the structured logger used by the pipeline.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Authenticator attaches credentials to an outgoing request.
type Authenticator interface {
	Apply(req *http.Request) error
}

// Request describes one API call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Client sends requests to the API.
type Client struct {
	baseURL       string
	httpClient    *retryablehttp.Client
	authenticator Authenticator
	logger        Logger
	debug         bool
	userAgent     string
	apiVersion    string

	headersMu      sync.RWMutex
	defaultHeaders map[string]string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.httpClient.Logger = &leveledLogger{logger: logger}
	}
}

// WithDebug logs every request and response.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithAPIVersion sends Accept-Version on every request.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithDefaultHeaders merges headers into the persistent default set.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.AddDefaultHeader(headers)
	}
}

// WithTimeout sets a client-wide timeout. Zero keeps the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables retries of connection failures. Responses are
// never retried, whatever their status.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify(skip bool) Option {
	return func(c *Client) {
		if !skip {
			return
		}

		transport, ok := c.httpClient.HTTPClient.Transport.(*http.Transport)
		if !ok {
			return
		}

		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- gated by REVERB_DEV_MODE in reverbclient
	}
}

// NewClient creates a Client for baseURL. authenticator may be nil.
func NewClient(baseURL string, authenticator Authenticator, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = 0
	retryClient.CheckRetry = connectionRetryPolicy

	client := &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		httpClient:    retryClient,
		authenticator: authenticator,
		userAgent:     constants.DefaultUserAgent,
		defaultHeaders: map[string]string{
			constants.HeaderContentType: constants.MediaTypeHALJSON,
			constants.HeaderAccept:      constants.MediaTypeHALJSON,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the URL relative paths are joined onto.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AddDefaultHeader merges headers into the set sent with every later request.
func (c *Client) AddDefaultHeader(headers map[string]string) {
	c.headersMu.Lock()
	defer c.headersMu.Unlock()

	for key, value := range headers {
		c.defaultHeaders[key] = value
	}
}

// DefaultHeaders returns a copy of the persistent default headers.
func (c *Client) DefaultHeaders() map[string]string {
	c.headersMu.RLock()
	defer c.headersMu.RUnlock()

	headers := make(map[string]string, len(c.defaultHeaders))
	for key, value := range c.defaultHeaders {
		headers[key] = value
	}

	return headers
}

// ResolveURL returns path unchanged when it is an absolute URL with a host,
// otherwise path joined onto baseURL.
func ResolveURL(baseURL, path string) string {
	parsed, err := url.Parse(path)
	if err == nil && parsed.IsAbs() && parsed.Host != "" {
		return path
	}

	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// Do sends req and classifies the response. For 401, 403 and 503 both the
// response and a *reverb.APIError are returned.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	c.logRequest(httpReq)

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing %s request: %w", req.Method, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	c.logResponse(httpReq, resp, time.Since(start))

	return resp, classifyResponse(resp)
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post sends a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put sends a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Body: body})
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	target, err := c.requestURL(req)
	if err != nil {
		return nil, err
	}

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}
	if len(body) > 0 {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target, rawBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrBuildRequest, err)
	}

	if c.userAgent != "" {
		httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)
	}

	for key, value := range c.DefaultHeaders() {
		httpReq.Header.Set(key, value)
	}

	if c.apiVersion != "" {
		httpReq.Header.Set(constants.HeaderAcceptVersion, c.apiVersion)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.authenticator != nil {
		err = c.authenticator.Apply(httpReq.Request)
		if err != nil {
			return nil, fmt.Errorf("authenticating request: %w", err)
		}
	}

	return httpReq, nil
}

func (c *Client) requestURL(req *Request) (string, error) {
	target := ResolveURL(c.baseURL, req.Path)
	if len(req.Query) == 0 {
		return target, nil
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("%w: parsing URL %q: %w", constants.ErrBuildRequest, target, err)
	}

	query := parsed.Query()
	for key, values := range req.Query {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

// encodeBody serializes body as JSON. Empty bodies (nil, "", {}, []) are
// not sent at all.
func encodeBody(body interface{}) ([]byte, error) {
	switch typed := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return typed, nil
	case json.RawMessage:
		return typed, nil
	case string:
		return []byte(typed), nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrEncodeBody, err)
	}

	switch string(data) {
	case "null", "{}", "[]":
		return nil, nil
	}

	return data, nil
}

func classifyResponse(resp *Response) error {
	switch resp.StatusCode {
	case http.StatusServiceUnavailable:
		return reverb.NewServiceUnavailableError(resp.StatusCode, constants.DefaultServiceUnavailableMessage)
	case http.StatusUnauthorized, http.StatusForbidden:
		message := constants.DefaultNotAuthorizedMessage

		result := resp.Get(constants.MessageKey)
		if result.Exists() && result.String() != "" {
			message = result.String()
		}

		return reverb.NewNotAuthorizedError(resp.StatusCode, message)
	default:
		return nil
	}
}

// connectionRetryPolicy retries transport failures only. A response of any
// status ends the attempt loop.
func connectionRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err == nil {
		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

func (c *Client) logRequest(req *retryablehttp.Request) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.Redacted(),
		"headers": redactHeaders(req.Header),
	})
}

func (c *Client) logResponse(req *retryablehttp.Request, resp *Response, duration time.Duration) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method":      req.Method,
		"url":         req.URL.Redacted(),
		"status_code": resp.StatusCode,
		"duration":    duration.String(),
		"body_bytes":  len(resp.Body),
	})
}

func redactHeaders(header http.Header) map[string]string {
	redacted := make(map[string]string, len(header))

	for key := range header {
		switch http.CanonicalHeaderKey(key) {
		case constants.HeaderAuthorization, constants.HeaderAuthToken:
			redacted[key] = "[REDACTED]"
		default:
			redacted[key] = header.Get(key)
		}
	}

	return redacted
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger. Only warnings
// and errors are forwarded; per-attempt debug chatter is dropped.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fieldsFromKeysAndValues(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fieldsFromKeysAndValues(keysAndValues))
}

func fieldsFromKeysAndValues(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])

		if target, isURL := keysAndValues[i+1].(*url.URL); isURL {
			fields[key] = target.Redacted()

			continue
		}

		fields[key] = keysAndValues[i+1]
	}

	return fields
}
