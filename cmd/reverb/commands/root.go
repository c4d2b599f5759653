package commands

import (
	"github.com/fivetwenty-io/reverb-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand builds the reverb command tree and binds its global flags
// to viper.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reverb",
		Short: "Reverb marketplace API CLI",
		Long: `A command-line interface for the Reverb marketplace API.

It authenticates sellers, creates and updates listings by SKU and manages
webhook registrations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.reverb/config.yml)")
	rootCmd.PersistentFlags().StringP("api", "a", "", "API base URL (default https://reverb.com)")
	rootCmd.PersistentFlags().StringP("token", "t", "", "personal access token, sent as X-Auth-Token")
	rootCmd.PersistentFlags().String("oauth-token", "", "OAuth access token, sent as a bearer token")
	rootCmd.PersistentFlags().String("basic-username", "", "HTTP basic username for the sandbox")
	rootCmd.PersistentFlags().String("basic-password", "", "HTTP basic password for the sandbox")
	rootCmd.PersistentFlags().String("api-version", "", "value for the Accept-Version header")
	rootCmd.PersistentFlags().StringSlice("header", nil, "extra header sent with every request (Name=value, repeatable)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP timeout (default 30s)")
	rootCmd.PersistentFlags().String("output", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every request and response")
	rootCmd.PersistentFlags().Bool("skip-ssl-validation", false, "skip SSL certificate validation (needs REVERB_DEV_MODE)")

	// Bind flags to viper
	for key, flag := range map[string]string{
		"config":              "config",
		"api":                 "api",
		"token":               "token",
		"oauth_token":         "oauth-token",
		"basic_username":      "basic-username",
		"basic_password":      "basic-password",
		"api_version":         "api-version",
		"headers":             "header",
		"timeout":             "timeout",
		"output":              "output",
		"verbose":             "verbose",
		"skip_ssl_validation": "skip-ssl-validation",
	} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}

	// Add commands
	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewLoginCommand())
	rootCmd.AddCommand(NewListingsCommand())
	rootCmd.AddCommand(NewWebhooksCommand())

	return rootCmd
}
