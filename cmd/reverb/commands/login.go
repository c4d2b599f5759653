package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/reverb-client/internal/constants"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange an email and password for a token",
		Long: `Authenticate with the Reverb API using an email and password and print the
returned token. Nothing is stored; export it as REVERB_TOKEN or pass --token.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())

			if email == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Email: ")

				line, _ := reader.ReadString('\n')
				email = strings.TrimSpace(line)
			}

			if email == "" {
				return constants.ErrEmailRequired
			}

			if password == "" {
				secret, err := readPassword(cmd.InOrStdin(), reader, cmd.ErrOrStderr())
				if err != nil {
					return err
				}

				password = secret
			}

			client, err := createClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Authenticate(cmd.Context(), email, password)
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

			return renderPropertyTable(cmd.OutOrStdout(), [][2]string{
				{"Email", email},
				{"Token", resp.Get("token").String()},
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")

	return cmd
}

// readPassword reads without echo from a terminal, or a single line otherwise.
func readPassword(in io.Reader, reader *bufio.Reader, prompt io.Writer) (string, error) {
	fmt.Fprint(prompt, "Password: ")

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		bytePassword, err := term.ReadPassword(int(file.Fd()))

		fmt.Fprintln(prompt)

		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}

		return string(bytePassword), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return strings.TrimSpace(line), nil
}
