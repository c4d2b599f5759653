package reverb

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_JSON(t *testing.T) {
	resp := &Response{
		StatusCode: 200,
		Headers:    http.Header{"Content-Type": []string{"application/hal+json; charset=utf-8"}},
		Body:       []byte(`{"make":"Fender","message":"hi"}`),
	}

	var body map[string]string

	require.NoError(t, resp.JSON(&body))
	assert.Equal(t, "Fender", body["make"])
	assert.Equal(t, "hi", resp.Message())
	assert.True(t, resp.IsSuccess())
	assert.True(t, resp.IsJSON())

	empty := &Response{StatusCode: 204}
	require.ErrorIs(t, empty.JSON(&body), ErrEmptyResponseBody)
	assert.Empty(t, empty.Message())

	invalid := &Response{StatusCode: 502, Body: []byte("<html>")}
	require.Error(t, invalid.JSON(&body))
	assert.False(t, invalid.IsSuccess())
}

func TestIsJSONMediaType(t *testing.T) {
	tests := map[string]bool{
		"application/json":                    true,
		"application/hal+json":                true,
		"application/hal+json; charset=utf-8": true,
		"text/html":                           false,
		"":                                    false,
	}

	for contentType, expected := range tests {
		assert.Equal(t, expected, IsJSONMediaType(contentType), contentType)
	}
}

func TestLinks_Self(t *testing.T) {
	links := Links{"self": {Href: "/api/listings/1"}}

	assert.Equal(t, "/api/listings/1", links.Self())
	assert.Empty(t, Links{}.Self())
}
