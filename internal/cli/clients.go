package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newClientsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "CRM clients and leads",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List CRM clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := a.client.Clients(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPHONE\tEMAIL")

			for _, c := range clients {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.Phone, c.Email)
			}

			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "leads",
		Short: "List CRM leads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			leads, err := a.client.Leads(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), leads)
		},
	})

	return cmd
}
