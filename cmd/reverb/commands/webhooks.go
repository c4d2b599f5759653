package commands

import (
	"fmt"

	"github.com/fivetwenty-io/reverb-client/internal/constants"
	"github.com/fivetwenty-io/reverb-client/pkg/reverb"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

// NewWebhooksCommand creates the webhooks command group.
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook"},
		Short:   "Manage webhook registrations",
		Long:    "List, register and remove webhook registrations",
	}

	cmd.AddCommand(newWebhooksListCommand())
	cmd.AddCommand(newWebhooksCreateCommand())
	cmd.AddCommand(newWebhooksDeleteCommand())

	return cmd
}

func newWebhooksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List webhook registrations",
		Long:  "List the webhook registrations of the authenticated account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.ListWebhooks(cmd.Context())
			if err != nil {
				return err
			}

			err = checkStatus(resp)
			if err != nil {
				return err
			}

			handled, err := renderDocument(cmd.OutOrStdout(), responseDocument(resp))
			if handled || err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("URL", "Topic", "Link")

			resp.Get(constants.RegistrationsKey).ForEach(func(_, registration gjson.Result) bool {
				_ = table.Append(
					orNotAvailable(registration.Get("url").String()),
					orNotAvailable(registration.Get("topic").String()),
					orNotAvailable(registration.Get("_links.self.href").String()),
				)

				return true
			})

			err = table.Render()
			if err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newWebhooksCreateCommand() *cobra.Command {
	var (
		url   string
		topic string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a webhook",
		Long:  "Register a URL to receive notifications for a topic, for example listings/update",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				return constants.ErrURLRequired
			}

			if topic == "" {
				return constants.ErrTopicRequired
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.CreateWebhook(cmd.Context(), url, topic)
			if err != nil {
				return err
			}

			return renderResponse(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "URL that receives notifications (required)")
	cmd.Flags().StringVar(&topic, "topic", "", "notification topic (required)")

	return cmd
}

func newWebhooksDeleteCommand() *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove a webhook registration",
		Long:  "Find the registration for a URL and delete it through its self link",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				return constants.ErrURLRequired
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			webhook, err := client.FindWebhook(cmd.Context(), url)
			if err != nil {
				return err
			}

			if webhook == nil {
				return fmt.Errorf("%w: %s", constants.ErrWebhookNotFound, url)
			}

			href, ok := webhook.SelfLink()
			if !ok {
				return reverb.ErrMissingSelfLink
			}

			resp, err := client.Delete(cmd.Context(), href, nil)
			if err != nil {
				return err
			}

			return renderResponse(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "registered URL (required)")

	return cmd
}
