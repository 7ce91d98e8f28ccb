package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newProductsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Inventory products",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List products with stock levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := a.client.Products(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSKU\tCATEGORY\tPRICE\tSTOCK")

			for _, p := range products {
				stock := fmt.Sprintf("%d", p.StockQuantity)
				if p.LowStockAlert > 0 && p.StockQuantity <= p.LowStockAlert {
					stock += " (low)"
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.Name, p.SKU, p.Category, p.SalePrice, stock)
			}

			return w.Flush()
		},
	})

	return cmd
}
