package commands

import (
	"fmt"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hamadhassan3/outseta-client-sub001/internal/constants"
	"github.com/hamadhassan3/outseta-client-sub001/internal/tokeninfo"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outsetaclient"
)

// NewTokenCommand creates the token command group.
func NewTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue and inspect access tokens",
		Long:  "Request access tokens from the token endpoint and inspect their claims",
	}

	cmd.AddCommand(newTokenGetCommand())
	cmd.AddCommand(newTokenInspectCommand())

	return cmd
}

func newTokenGetCommand() *cobra.Command {
	var (
		password string
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "get USERNAME",
		Short: "Get an access token",
		Long: `Exchange a username and password for an access token.

With an API key configured the password may be omitted and the token is
issued for USERNAME without one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := clientConfig(outseta.AuthFamily)
			if err != nil {
				return err
			}

			if config.APIKey == "" && password == "" {
				password, err = promptPassword(cmd)
				if err != nil {
					return err
				}
			}

			auth, err := outsetaclient.NewAuth(config)
			if err != nil {
				return err
			}

			token, err := auth.GetAccessToken(commandContext(cmd), args[0], password)
			if err != nil {
				return err
			}

			if save {
				stored := loadConfig()
				stored.AccessToken = token.AccessToken

				err = saveConfigStruct(stored)
				if err != nil {
					return err
				}
			}

			return render(cmd, token, func(table *Table) {
				table.Header("Property", "Value")
				table.Row("Access Token", token.AccessToken)
				table.Row("Type", orNotAvailable(token.TokenType))
				table.Row("Expires In", token.Lifetime().String())
			})
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	cmd.Flags().BoolVar(&save, "save", false, "store the token as access_token in the config file")

	return cmd
}

func promptPassword(cmd *cobra.Command) (string, error) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")

	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.ErrOrStderr())

	return string(bytePassword), nil
}

func newTokenInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [TOKEN]",
		Short: "Show token claims",
		Long:  "Decode an access token, by default the configured one, without verifying its signature",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := loadConfig().AccessToken
			if len(args) == 1 {
				token = args[0]
			}

			if token == "" {
				return constants.ErrNoCredentials
			}

			info, err := tokeninfo.Inspect(token)
			if err != nil {
				return err
			}

			now := time.Now()

			return render(cmd, info, func(table *Table) {
				table.Header("Claim", "Value")
				table.Row("Subject", orNotAvailable(info.Subject))
				table.Row("Email", orNotAvailable(info.Email))
				table.Row("Name", orNotAvailable(info.Name))
				table.Row("Issuer", orNotAvailable(info.Issuer))
				table.Row("Account", orNotAvailable(info.AccountID))
				table.Row("Issued At", formatTime(outseta.NewTime(info.IssuedAt)))
				table.Row("Expires At", formatTime(outseta.NewTime(info.ExpiresAt)))
				table.Row("Expired", formatBool(info.Expired(now)))
				table.Row("Remaining", info.Remaining(now).Truncate(time.Second).String())
			})
		},
	}
}
