package reverbclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/reverb-client/pkg/reverb"
	"github.com/fivetwenty-io/reverb-client/pkg/reverbclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := reverbclient.New(&reverb.Config{BaseURL: "https://reverb.com"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		client, err := reverbclient.New(nil)
		require.ErrorIs(t, err, reverb.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("does not modify the caller's config", func(t *testing.T) {
		t.Parallel()

		config := &reverb.Config{BaseURL: "reverb.com/"}

		_, err := reverbclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "reverb.com/", config.BaseURL)
	})

	t.Run("rejects basic auth without username", func(t *testing.T) {
		t.Parallel()

		_, err := reverbclient.New(&reverb.Config{BasicAuth: &reverb.BasicAuth{Password: "pass"}})
		require.ErrorIs(t, err, reverb.ErrInvalidConfig)
	})

	t.Run("rejects negative retries", func(t *testing.T) {
		t.Parallel()

		_, err := reverbclient.New(&reverb.Config{RetryMax: -1})
		require.ErrorIs(t, err, reverb.ErrInvalidConfig)
	})

	t.Run("rejects malformed base URL", func(t *testing.T) {
		t.Parallel()

		_, err := reverbclient.New(&reverb.Config{BaseURL: "https://exa mple.com"})
		require.ErrorIs(t, err, reverb.ErrInvalidConfig)
	})
}

func TestNew_SkipTLSVerify(t *testing.T) {
	t.Run("refused outside dev mode", func(t *testing.T) {
		t.Setenv("REVERB_DEV_MODE", "")

		_, err := reverbclient.New(&reverb.Config{SkipTLSVerify: true})
		require.ErrorIs(t, err, reverb.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "REVERB_DEV_MODE")
	})

	t.Run("allowed in dev mode", func(t *testing.T) {
		t.Setenv("REVERB_DEV_MODE", "1")

		client, err := reverbclient.New(&reverb.Config{SkipTLSVerify: true})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: "https://reverb.com"},
		{input: "  ", expected: "https://reverb.com"},
		{input: "reverb.com", expected: "https://reverb.com"},
		{input: "https://sandbox.reverb.com/", expected: "https://sandbox.reverb.com"},
		{input: "http://localhost:3000", expected: "http://localhost:3000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, reverbclient.NormalizeBaseURL(tt.input))
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	client, err := reverbclient.NewWithToken("https://reverb.com", "token")
	require.NoError(t, err)
	assert.NotNil(t, client)

	client, err = reverbclient.NewWithOAuthToken("reverb.com", "oauth")
	require.NoError(t, err)
	assert.NotNil(t, client)

	client, err = reverbclient.NewSandbox("user", "pass", "token")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/api/my/listings":
			assert.Equal(t, "token", request.Header.Get("X-Auth-Token"))
			writer.Header().Set("Content-Type", "application/hal+json")
			_, _ = writer.Write([]byte(`{"listings":[{"make":"Fender","_links":{"self":{"href":"/api/listings/1"}}}]}`))
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := reverbclient.NewWithToken(server.URL+"/", "token")
	require.NoError(t, err)

	listing, err := client.FindListingBySku(context.Background(), "ASKU")
	require.NoError(t, err)
	require.NotNil(t, listing)
	assert.Equal(t, "Fender", listing.String("make"))

	resp, err := client.Get(context.Background(), "/api/unknown")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
