package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/reverb-client/internal/constants"
	"github.com/fivetwenty-io/reverb-client/pkg/reverb"
)

// CreateListing implements reverb.ListingsClient.CreateListing.
func (c *Client) CreateListing(ctx context.Context, attributes interface{}) (*reverb.Response, error) {
	resp, err := c.httpClient.Post(ctx, constants.ListingsPath, attributes)
	if err != nil {
		return resp, fmt.Errorf("creating listing: %w", err)
	}

	return resp, nil
}

// FindBySku implements reverb.ListingsClient.FindBySku. Only the first
// match is returned; nil means the search came back empty.
func (c *Client) FindBySku(ctx context.Context, sku, state string) (*reverb.Resource, error) {
	query := url.Values{}
	query.Set("sku", sku)
	query.Set("state", state)

	resp, err := c.httpClient.Get(ctx, constants.MyListingsPath, query)
	if err != nil {
		return nil, fmt.Errorf("finding listing by sku: %w", err)
	}

	first := resp.Get(constants.ListingsKey + ".0")
	if !first.IsObject() {
		return nil, nil //nolint:nilnil // absence is not an error
	}

	resource, err := reverb.NewResource([]byte(first.Raw), c)
	if err != nil {
		return nil, fmt.Errorf("wrapping listing: %w", err)
	}

	return resource, nil
}

// FindListingBySku implements reverb.ListingsClient.FindListingBySku.
func (c *Client) FindListingBySku(ctx context.Context, sku string) (*reverb.Resource, error) {
	return c.FindBySku(ctx, sku, constants.ListingStateAll)
}

// FindDraft implements reverb.ListingsClient.FindDraft.
func (c *Client) FindDraft(ctx context.Context, sku string) (*reverb.Resource, error) {
	return c.FindBySku(ctx, sku, constants.ListingStateDraft)
}
