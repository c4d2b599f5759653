package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/reverb-client/internal/constants"
	"github.com/fivetwenty-io/reverb-client/pkg/reverb"
	"github.com/tidwall/gjson"
)

// CreateWebhook implements reverb.WebhooksClient.CreateWebhook.
func (c *Client) CreateWebhook(ctx context.Context, url, topic string) (*reverb.Response, error) {
	resp, err := c.httpClient.Post(ctx, constants.WebhookRegistrationsPath, &reverb.WebhookRegistration{
		URL:   url,
		Topic: topic,
	})
	if err != nil {
		return resp, fmt.Errorf("creating webhook: %w", err)
	}

	return resp, nil
}

// ListWebhooks implements reverb.WebhooksClient.ListWebhooks.
func (c *Client) ListWebhooks(ctx context.Context) (*reverb.Response, error) {
	resp, err := c.httpClient.Get(ctx, constants.WebhookRegistrationsPath, nil)
	if err != nil {
		return resp, fmt.Errorf("listing webhooks: %w", err)
	}

	return resp, nil
}

// FindWebhook implements reverb.WebhooksClient.FindWebhook.
func (c *Client) FindWebhook(ctx context.Context, url string) (*reverb.Resource, error) {
	resp, err := c.ListWebhooks(ctx)
	if err != nil {
		return nil, err
	}

	var match gjson.Result

	resp.Get(constants.RegistrationsKey).ForEach(func(_, registration gjson.Result) bool {
		if registration.IsObject() && registration.Get("url").String() == url {
			match = registration

			return false
		}

		return true
	})

	if !match.Exists() {
		return nil, nil //nolint:nilnil // absence is not an error
	}

	resource, err := reverb.NewResource([]byte(match.Raw), c)
	if err != nil {
		return nil, fmt.Errorf("wrapping webhook: %w", err)
	}

	return resource, nil
}
