package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := a.client.Health(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), health)
		},
	}
}

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the profile behind the configured credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := a.sessions.Profile(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), profile)
		},
	}
}
