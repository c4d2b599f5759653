package auth

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/fivetwenty-io/reverb-client/internal/constants"
	"golang.org/x/oauth2"
)

// Scheme identifies the token header attached to requests.
type Scheme int

const (
	// SchemeNone sends no token header.
	SchemeNone Scheme = iota

	// SchemeLegacyToken sends X-Auth-Token.
	SchemeLegacyToken

	// SchemeBearer sends "Authorization: Bearer <token>".
	SchemeBearer
)

// String implements fmt.Stringer.
func (s Scheme) String() string {
	switch s {
	case SchemeLegacyToken:
		return "x-auth-token"
	case SchemeBearer:
		return "bearer"
	default:
		return "none"
	}
}

// Config carries every credential the API accepts.
type Config struct {
	AuthToken   string
	OAuthToken  string
	TokenSource oauth2.TokenSource
	Username    string
	Password    string
}

// Authenticator applies credentials to outgoing requests.
type Authenticator struct {
	authToken   string
	tokenSource oauth2.TokenSource
	basic       *url.Userinfo
}

// NewAuthenticator builds an Authenticator. A legacy token takes precedence
// over any OAuth credential; a token source takes precedence over a static
// OAuth token.
func NewAuthenticator(config *Config) *Authenticator {
	authenticator := &Authenticator{}
	if config == nil {
		return authenticator
	}

	authenticator.authToken = config.AuthToken

	switch {
	case config.TokenSource != nil:
		authenticator.tokenSource = config.TokenSource
	case config.OAuthToken != "":
		authenticator.tokenSource = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.OAuthToken})
	}

	if config.Username != "" {
		authenticator.basic = url.UserPassword(config.Username, config.Password)
	}

	return authenticator
}

// Scheme reports which token header Apply will set.
func (a *Authenticator) Scheme() Scheme {
	switch {
	case a.authToken != "":
		return SchemeLegacyToken
	case a.tokenSource != nil:
		return SchemeBearer
	default:
		return SchemeNone
	}
}

// HasBasicAuth reports whether sandbox basic credentials are configured.
func (a *Authenticator) HasBasicAuth() bool {
	return a.basic != nil
}

// Apply sets exactly one token header and attaches basic credentials to the
// request URL. net/http turns URL credentials into a Basic Authorization
// header only when none is set, so a bearer token is never displaced.
func (a *Authenticator) Apply(req *http.Request) error {
	switch a.Scheme() {
	case SchemeLegacyToken:
		req.Header.Set(constants.HeaderAuthToken, a.authToken)
	case SchemeBearer:
		token, err := a.tokenSource.Token()
		if err != nil {
			return fmt.Errorf("getting OAuth token: %w", err)
		}

		token.SetAuthHeader(req)
	case SchemeNone:
	}

	if a.basic != nil {
		req.URL.User = a.basic
	}

	return nil
}
