package cli

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bizzauto/gateway/internal/backend"
	"github.com/bizzauto/gateway/internal/entity"
)

func newExpensesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Expense records",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expenses, err := a.client.Expenses(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), expenses)
		},
	})

	var (
		companyID string
		category  string
		date      string
		notes     string
	)

	add := &cobra.Command{
		Use:   "add <title> <amount>",
		Short: "Record an expense",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parse amount: %w", err)
			}

			company, err := uuid.FromString(companyID)
			if err != nil {
				return fmt.Errorf("parse company id: %w", err)
			}

			created, err := a.client.CreateExpense(cmd.Context(), entity.Expense{
				CompanyID:   company,
				Title:       args[0],
				Category:    category,
				Amount:      amount,
				ExpenseDate: date,
				Notes:       notes,
			})
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), created)
		},
	}

	add.Flags().StringVar(&companyID, "company", "", "company id (required)")
	_ = add.MarkFlagRequired("company")
	add.Flags().StringVar(&category, "category", "", "expense category")
	add.Flags().StringVar(&date, "date", "", "expense date (YYYY-MM-DD)")
	add.Flags().StringVar(&notes, "notes", "", "free-form notes")

	cmd.AddCommand(add)

	var summaryGatewayURL string

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Today/month/year totals from the local gateway's store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gw := backend.NewClient(summaryGatewayURL, a.sessions)

			var totals entity.ExpenseSummary
			if err := gw.Get(cmd.Context(), "/api/expenses/summary").Decode(&totals); err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), totals)
		},
	}

	summary.Flags().StringVar(&summaryGatewayURL, "gateway", "http://127.0.0.1:3000", "local gateway base URL")

	cmd.AddCommand(summary)

	var gatewayURL string

	export := &cobra.Command{
		Use:   "export",
		Short: "Download the local gateway's expense store as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gw := backend.NewClient(gatewayURL, a.sessions)

			res := gw.Get(cmd.Context(), "/api/expenses/export?format=csv")
			if err := res.Err(); err != nil {
				return err
			}

			_, err := cmd.OutOrStdout().Write(res.Data)

			return err
		},
	}

	export.Flags().StringVar(&gatewayURL, "gateway", "http://127.0.0.1:3000", "local gateway base URL")

	cmd.AddCommand(export)

	return cmd
}
