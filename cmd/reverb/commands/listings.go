package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fivetwenty-io/reverb-client/internal/constants"
	"github.com/fivetwenty-io/reverb-client/pkg/reverb"
	"github.com/spf13/cobra"
)

// NewListingsCommand creates the listings command group.
func NewListingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "listings",
		Aliases: []string{"listing"},
		Short:   "Manage listings",
		Long:    "Create, find and update your Reverb listings by SKU",
	}

	cmd.AddCommand(newListingsCreateCommand())
	cmd.AddCommand(newListingsFindCommand())
	cmd.AddCommand(newListingsUpdateCommand())

	return cmd
}

func newListingsCreateCommand() *cobra.Command {
	var (
		file        string
		assignments []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a listing",
		Long: `Create a listing from a YAML or JSON attribute file and/or path=value
assignments, for example --set make=Fender --set price.amount=1000.00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := buildAttributes(file, assignments)
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.CreateListing(cmd.Context(), json.RawMessage(body))
			if err != nil {
				return err
			}

			return renderResponse(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON file with listing attributes")
	cmd.Flags().StringArrayVar(&assignments, "set", nil, "attribute assignment path=value (repeatable)")

	return cmd
}

func newListingsFindCommand() *cobra.Command {
	var (
		sku   string
		draft bool
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find a listing by SKU",
		Long:  "Find the first of your listings with the given SKU, in any state or only among drafts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			listing, err := findListing(cmd, client, sku, draft)
			if err != nil {
				return err
			}

			return renderListing(cmd.OutOrStdout(), listing)
		},
	}

	cmd.Flags().StringVarP(&sku, "sku", "s", "", "listing SKU (required)")
	cmd.Flags().BoolVar(&draft, "draft", false, "only search drafts")

	return cmd
}

func newListingsUpdateCommand() *cobra.Command {
	var (
		sku         string
		draft       bool
		file        string
		assignments []string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a listing found by SKU",
		Long: `Find a listing by SKU and PUT the given attributes to its self link.
Search results may lag behind the update.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := buildAttributes(file, assignments)
			if err != nil {
				return err
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			listing, err := findListing(cmd, client, sku, draft)
			if err != nil {
				return err
			}

			resp, err := listing.Update(cmd.Context(), json.RawMessage(body))
			if err != nil {
				return err
			}

			return renderResponse(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVarP(&sku, "sku", "s", "", "listing SKU (required)")
	cmd.Flags().BoolVar(&draft, "draft", false, "only search drafts")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON file with listing attributes")
	cmd.Flags().StringArrayVar(&assignments, "set", nil, "attribute assignment path=value (repeatable)")

	return cmd
}

func findListing(cmd *cobra.Command, client reverb.ListingsClient, sku string, draft bool) (*reverb.Resource, error) {
	if sku == "" {
		return nil, constants.ErrSKURequired
	}

	var (
		listing *reverb.Resource
		err     error
	)

	if draft {
		listing, err = client.FindDraft(cmd.Context(), sku)
	} else {
		listing, err = client.FindListingBySku(cmd.Context(), sku)
	}

	if err != nil {
		return nil, err
	}

	if listing == nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrListingNotFound, sku)
	}

	return listing, nil
}

func renderListing(w io.Writer, listing *reverb.Resource) error {
	handled, err := renderDocument(w, listing.Attributes())
	if handled || err != nil {
		return err
	}

	var typed reverb.Listing

	err = listing.Decode(&typed)
	if err != nil {
		return err
	}

	id := ""
	if typed.ID != 0 {
		id = strconv.Itoa(typed.ID)
	}

	price := ""
	if typed.Price != nil {
		price = typed.Price.Amount + " " + typed.Price.Currency
	}

	return renderPropertyTable(w, [][2]string{
		{"ID", id},
		{"SKU", typed.SKU},
		{"Make", typed.Make},
		{"Model", typed.Model},
		{"Title", typed.Title},
		{"Price", price},
		{"State", listing.String("state.slug")},
		{"Link", typed.Links.Self()},
	})
}
