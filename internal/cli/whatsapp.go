package cli

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/spf13/cobra"

	"github.com/bizzauto/gateway/internal/entity"
)

func newWhatsappCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whatsapp",
		Short: "WhatsApp messaging",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "send <phone> <message>",
		Short: "Send a message through the Meta integration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.SendWhatsappMessage(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", resp)

			return err
		},
	})

	var (
		companyID string
		at        string
	)

	schedule := &cobra.Command{
		Use:   "schedule <phone> <message>",
		Short: "Schedule a message for later delivery",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			company, err := uuid.FromString(companyID)
			if err != nil {
				return fmt.Errorf("parse company id: %w", err)
			}

			scheduledAt, err := time.Parse(time.RFC3339, at)
			if err != nil {
				return fmt.Errorf("parse scheduled time: %w", err)
			}

			created, err := a.client.ScheduleMessage(cmd.Context(), entity.ScheduledMessage{
				CompanyID:   company,
				Phone:       args[0],
				Message:     args[1],
				ScheduledAt: scheduledAt,
			})
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), created)
		},
	}

	schedule.Flags().StringVar(&companyID, "company", "", "company id (required)")
	_ = schedule.MarkFlagRequired("company")
	schedule.Flags().StringVar(&at, "at", "", "delivery time, RFC 3339 (required)")
	_ = schedule.MarkFlagRequired("at")

	cmd.AddCommand(schedule)

	cmd.AddCommand(&cobra.Command{
		Use:   "scheduled",
		Short: "List pending scheduled messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := a.client.ScheduledMessages(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), messages)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "logs",
		Short: "List sent and received messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := a.client.WhatsappLogs(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), logs)
		},
	})

	return cmd
}
