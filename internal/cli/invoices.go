package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newInvoicesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Invoices and OCR intake",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			invoices, err := a.client.Invoices(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), invoices)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "ocr-upload <file>",
		Short: "Queue a scanned invoice for OCR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			resp, err := a.client.UploadInvoiceForOCR(cmd.Context(), f.Name(), f)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), resp)
		},
	})

	return cmd
}
