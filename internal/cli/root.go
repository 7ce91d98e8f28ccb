// Package cli implements the bizzauto operator console, a thin cobra shell
// over the backend client.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bizzauto/gateway/internal/backend"
	"github.com/bizzauto/gateway/internal/session"
	"github.com/bizzauto/gateway/pkg/config"
)

type app struct {
	client   *backend.Client
	sessions *session.Store
}

func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "bizzauto",
		Short: "Operator console for the BizzAuto backend",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(".env")
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			a.sessions = session.New(cfg.Session.AccessToken)
			a.client = backend.NewClient(cfg.Backend.BaseURL, a.sessions)
			a.sessions.SetUserSource(a.client)

			return nil
		},
	}

	rootCmd.AddCommand(
		newHealthCommand(a),
		newProductsCommand(a),
		newClientsCommand(a),
		newInvoicesCommand(a),
		newExpensesCommand(a),
		newWhatsappCommand(a),
		newReportsCommand(a),
		newAdminCommand(a),
		newWhoamiCommand(a),
	)

	return rootCmd
}

// printJSON renders any API payload the way the pages would consume it.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
