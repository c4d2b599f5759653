package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/reverb-client/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

var errTokenSource = errors.New("token source failed")

type failingTokenSource struct{}

func (failingTokenSource) Token() (*oauth2.Token, error) {
	return nil, errTokenSource
}

func TestAuthenticator_Scheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		config   *auth.Config
		expected auth.Scheme
	}{
		{
			name:     "nil config",
			config:   nil,
			expected: auth.SchemeNone,
		},
		{
			name:     "no credentials",
			config:   &auth.Config{},
			expected: auth.SchemeNone,
		},
		{
			name:     "legacy token only",
			config:   &auth.Config{AuthToken: "legacy"},
			expected: auth.SchemeLegacyToken,
		},
		{
			name:     "oauth token only",
			config:   &auth.Config{OAuthToken: "oauth"},
			expected: auth.SchemeBearer,
		},
		{
			name:     "legacy token wins over oauth token",
			config:   &auth.Config{AuthToken: "legacy", OAuthToken: "oauth"},
			expected: auth.SchemeLegacyToken,
		},
		{
			name:     "token source only",
			config:   &auth.Config{TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "src"})},
			expected: auth.SchemeBearer,
		},
		{
			name:     "basic auth alone sends no token",
			config:   &auth.Config{Username: "user", Password: "pass"},
			expected: auth.SchemeNone,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, auth.NewAuthenticator(tt.config).Scheme())
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestAuthenticator_Apply(t *testing.T) {
	t.Parallel()

	t.Run("legacy token header only", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "https://reverb.com/api/listings", nil)
		authenticator := auth.NewAuthenticator(&auth.Config{AuthToken: "legacy", OAuthToken: "oauth"})

		require.NoError(t, authenticator.Apply(req))
		assert.Equal(t, "legacy", req.Header.Get("X-Auth-Token"))
		assert.Empty(t, req.Header.Get("Authorization"))
	})

	t.Run("bearer header only", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "https://reverb.com/api/listings", nil)
		authenticator := auth.NewAuthenticator(&auth.Config{OAuthToken: "oauth"})

		require.NoError(t, authenticator.Apply(req))
		assert.Equal(t, "Bearer oauth", req.Header.Get("Authorization"))
		assert.Empty(t, req.Header.Get("X-Auth-Token"))
	})

	t.Run("token source wins over static oauth token", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "https://reverb.com/api/listings", nil)
		authenticator := auth.NewAuthenticator(&auth.Config{
			OAuthToken:  "static",
			TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "from-source"}),
		})

		require.NoError(t, authenticator.Apply(req))
		assert.Equal(t, "Bearer from-source", req.Header.Get("Authorization"))
	})

	t.Run("token source failure", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "https://reverb.com/api/listings", nil)
		authenticator := auth.NewAuthenticator(&auth.Config{TokenSource: failingTokenSource{}})

		err := authenticator.Apply(req)
		require.Error(t, err)
		require.ErrorIs(t, err, errTokenSource)
	})

	t.Run("basic credentials go on the URL", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "https://sandbox.reverb.com/api/listings", nil)
		authenticator := auth.NewAuthenticator(&auth.Config{AuthToken: "legacy", Username: "user", Password: "pass"})

		require.NoError(t, authenticator.Apply(req))
		assert.True(t, authenticator.HasBasicAuth())
		require.NotNil(t, req.URL.User)
		assert.Equal(t, "user", req.URL.User.Username())

		password, ok := req.URL.User.Password()
		assert.True(t, ok)
		assert.Equal(t, "pass", password)
		assert.Equal(t, "legacy", req.Header.Get("X-Auth-Token"))
	})

	t.Run("no credentials", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "https://reverb.com/api/listings", nil)
		authenticator := auth.NewAuthenticator(nil)

		require.NoError(t, authenticator.Apply(req))
		assert.Empty(t, req.Header.Get("X-Auth-Token"))
		assert.Empty(t, req.Header.Get("Authorization"))
		assert.Nil(t, req.URL.User)
		assert.False(t, authenticator.HasBasicAuth())
	})
}

func TestScheme_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", auth.SchemeNone.String())
	assert.Equal(t, "x-auth-token", auth.SchemeLegacyToken.String())
	assert.Equal(t, "bearer", auth.SchemeBearer.String())
}
