package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newReportsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Accounting and dashboard reports",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "dashboard",
		Short: "Company-wide dashboard summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := a.client.DashboardSummary(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), summary)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sales",
		Short: "Invoices backing the sales summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			invoices, err := a.client.SalesSummary(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), invoices)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "expenses",
		Short: "Expense totals grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := a.client.ExpenseReport(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tTOTAL")

			for _, row := range rows {
				fmt.Fprintf(tw, "%s\t%s\n", row.Category, row.Total)
			}

			return tw.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "stock",
		Short: "Products for the stock valuation report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := a.client.StockReport(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), products)
		},
	})

	return cmd
}
