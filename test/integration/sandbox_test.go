//go:build integration

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandbox_Authenticate(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	if config.Email == "" {
		t.Skip("REVERB_TEST_EMAIL not set, skipping authentication test")
	}

	client := config.NewClient(t)

	resp, err := client.Authenticate(context.Background(), config.Email, config.Password)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Get("token").String())
}

// TestSandbox_ListingLifecycle creates a listing, finds it by SKU and updates
// it through its self link.
func TestSandbox_ListingLifecycle(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()
	sku := GenerateTestName("SKU")

	resp, err := client.CreateListing(ctx, map[string]string{
		"make":  "Fender",
		"model": "Stratocaster",
		"sku":   sku,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

	// The search index lags writes.
	require.Eventually(t, func() bool {
		listing, findErr := client.FindListingBySku(ctx, sku)
		if findErr != nil || listing == nil {
			return false
		}

		return listing.String("make") == "Fender" && listing.String("model") == "Stratocaster"
	}, 30*time.Second, time.Second)

	listing, err := client.FindListingBySku(ctx, sku)
	require.NoError(t, err)
	require.NotNil(t, listing)

	resp, err = listing.Update(ctx, map[string]string{"title": "integration title"})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess(), string(resp.Body))

	draft, err := client.FindDraft(ctx, sku)
	require.NoError(t, err)
	assert.NotNil(t, draft)
}

func TestSandbox_Webhooks(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()
	url := "https://example.com/" + GenerateTestName("hook")

	resp, err := client.CreateWebhook(ctx, url, "listings/update")
	require.NoError(t, err)
	require.True(t, resp.IsSuccess(), string(resp.Body))

	webhook, err := client.FindWebhook(ctx, url)
	require.NoError(t, err)
	require.NotNil(t, webhook)

	href, ok := webhook.SelfLink()
	require.True(t, ok)

	resp, err = client.Delete(ctx, href, nil)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
}
