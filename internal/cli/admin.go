package cli

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/spf13/cobra"
)

func newAdminCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Platform administration (super-admin credential required)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "tenants",
		Short: "List tenant companies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tenants, err := a.client.Tenants(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), tenants)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "users",
		Short: "List users across all tenants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := a.client.AdminUsers(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), users)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "suspend <user-id>",
		Short: "Suspend a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.FromString(args[0])
			if err != nil {
				return fmt.Errorf("parse user id: %w", err)
			}

			return a.client.SuspendUser(cmd.Context(), id)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "activate <user-id>",
		Short: "Reactivate a suspended user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.FromString(args[0])
			if err != nil {
				return fmt.Errorf("parse user id: %w", err)
			}

			return a.client.ActivateUser(cmd.Context(), id)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "analytics",
		Short: "Platform-wide usage analytics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			analytics, err := a.client.Analytics(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), analytics)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "whatsapp-stats",
		Short: "Message volume per tenant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.client.AdminWhatsappStats(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), stats)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "billing",
		Short: "Billing history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.client.BillingHistory(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), entries)
		},
	})

	return cmd
}
