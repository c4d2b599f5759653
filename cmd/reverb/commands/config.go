package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fivetwenty-io/reverb-client/internal/constants"
	"github.com/fivetwenty-io/reverb-client/pkg/reverb"
	"github.com/fivetwenty-io/reverb-client/pkg/reverbclient"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitConfig points viper at the config file and the REVERB_* environment.
// The file is optional and never written.
func InitConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.reverb/config.yml
		viper.AddConfigPath(filepath.Join(home, ".reverb"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// buildClientConfig assembles a reverb.Config from flags, environment and
// the config file.
func buildClientConfig(stderr io.Writer) (*reverb.Config, error) {
	headers, err := parseHeaders(viper.GetStringSlice("headers"))
	if err != nil {
		return nil, err
	}

	timeout := viper.GetDuration("timeout")
	if timeout <= 0 {
		timeout = constants.ShortHTTPTimeout
	}

	config := &reverb.Config{
		BaseURL:        viper.GetString("api"),
		AuthToken:      viper.GetString("token"),
		OAuthToken:     viper.GetString("oauth_token"),
		APIVersion:     viper.GetString("api_version"),
		DefaultHeaders: headers,
		HTTPTimeout:    timeout,
		SkipTLSVerify:  viper.GetBool("skip_ssl_validation"),
		Debug:          viper.GetBool("verbose"),
		Logger:         newLogger(stderr, viper.GetBool("verbose")),
	}

	if username := viper.GetString("basic_username"); username != "" {
		config.BasicAuth = &reverb.BasicAuth{
			Username: username,
			Password: viper.GetString("basic_password"),
		}
	}

	return config, nil
}

// createClient builds a client for cmd from the current configuration.
func createClient(cmd *cobra.Command) (reverb.Client, error) {
	config, err := buildClientConfig(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	client, err := reverbclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// parseHeaders turns Name=value pairs into a header map.
func parseHeaders(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil //nolint:nilnil // no headers is not an error
	}

	headers := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)

		if !found || name == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidHeaderAssignment, pair)
		}

		headers[name] = strings.TrimSpace(value)
	}

	return headers, nil
}

// hclogAdapter backs reverb.Logger with go-hclog.
type hclogAdapter struct {
	logger hclog.Logger
}

func newLogger(output io.Writer, verbose bool) *hclogAdapter {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}

	return &hclogAdapter{
		logger: hclog.New(&hclog.LoggerOptions{
			Name:   "reverb",
			Level:  level,
			Output: output,
		}),
	}
}

func (l *hclogAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, flattenFields(fields)...)
}

func (l *hclogAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, flattenFields(fields)...)
}

func (l *hclogAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, flattenFields(fields)...)
}

func (l *hclogAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, flattenFields(fields)...)
}

// flattenFields renders fields as hclog key/value pairs in key order.
func flattenFields(fields map[string]interface{}) []interface{} {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}

	return args
}
