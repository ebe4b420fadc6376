package cmd

import (
	"fmt"

	"github.com/chibuka/so-importer/client"
	"github.com/chibuka/so-importer/internal/config"
	"github.com/chibuka/so-importer/ui"
	"github.com/spf13/cobra"
)

func newAuthCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:     "auth",
		Aliases: []string{"login"},
		Short:   "Authenticate with Stack Exchange OAuth",
		Long: `Authenticate with Stack Exchange to obtain an access token.

This command opens your browser on the Stack Exchange authorization page.
Once you approve the app, paste the URL of the page you land on; the token
it carries is stored in ~/.so-importer/config.json for future commands.

SO_IMPORTER_CLIENT_ID must be set. SO_IMPORTER_CLIENT_SECRET is only needed
when Stack Exchange answers with an authorization code.

Example:
  so-importer auth
  so-importer auth --print-only`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			clientID := config.RetrieveClientID(log)
			if clientID == "" {
				return client.ErrMissingClientID
			}

			token, err := client.Login(cmd.Context(), log, cmd.InOrStdin(), out, clientID, config.RetrieveClientSecret())
			if err != nil {
				_, _ = fmt.Fprintln(out, ui.Failure("Failed to authenticate: "+err.Error()))
				return err
			}
			_, _ = fmt.Fprintln(out, ui.Success("Authenticated successfully!"))

			if printOnly {
				_, _ = fmt.Fprintln(out, ui.Hint("Set SO_IMPORTER_TOKEN to the following token:"))
				_, _ = fmt.Fprintln(out, token)
				return nil
			}

			cfg.AccessToken = token
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save access token: %w", err)
			}
			log.Debug().Msg("access token stored in the config file")
			_, _ = fmt.Fprintln(out, ui.Hint("Token saved. You're ready to query questions!"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print-only", false, "Print the token instead of storing it")
	return cmd
}
