package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/devicefarm-e2e/internal/application"
	"github.com/spf13/cobra"
)

func newCredsCmd(app *app) *cobra.Command {
	credsCmd := &cobra.Command{
		Use:   "creds",
		Short: "Manage device farm credentials",
	}

	credsCmd.AddCommand(
		newCredsSetCmd(app),
		newCredsShowCmd(app),
		newCredsRemoveCmd(app),
	)

	return credsCmd
}

func newCredsSetCmd(app *app) *cobra.Command {
	var username string
	var accessKey string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the farm username and access key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := app.credentials.Set(cmd.Context(), application.Credentials{
				Username:  strings.TrimSpace(username),
				AccessKey: strings.TrimSpace(accessKey),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "credentials stored")
			return err
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Farm username")
	cmd.Flags().StringVar(&accessKey, "access-key", "", "Farm access key")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("access-key")

	return cmd
}

func newCredsShowCmd(app *app) *cobra.Command {
	var withURL bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved credentials with the access key masked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := app.credentials.Get(cmd.Context())
			if err != nil {
				return err
			}

			masked := application.Credentials{Username: creds.Username, AccessKey: maskSecret(creds.AccessKey)}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "username: %s\naccess key: %s\n", masked.Username, masked.AccessKey); err != nil {
				return err
			}
			if withURL {
				_, err = fmt.Fprintf(out, "hub: https://%s:%s@%s/wd/hub\n", masked.Username, masked.AccessKey, hubHost(app))
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&withURL, "url", false, "Also print the hub endpoint")

	return cmd
}

func newCredsRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove stored credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.credentials.Remove(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "credentials removed")
			return err
		},
	}
}

func maskSecret(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}

func hubHost(app *app) string {
	if app.cfg.Farm.HubHost == "" {
		return application.DefaultHubHost
	}
	return app.cfg.Farm.HubHost
}
