package cmd

import (
	"fmt"

	"github.com/chibuka/so-importer/internal/config"
	"github.com/chibuka/so-importer/ui"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the Stack Exchange credentials are set",
		Long: `Check that the client ID, the API key and the access token can be found.

The client ID and the key come from SO_IMPORTER_CLIENT_ID and SO_IMPORTER_KEY.
The token comes from SO_IMPORTER_TOKEN or from a previous 'so-importer auth'.

Example:
  so-importer check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			checks := []struct {
				name  string
				value string
			}{
				{"client ID", config.RetrieveClientID(log)},
				{"key", config.RetrieveKey(log)},
				{"access token", config.RetrieveToken(log, cfg)},
			}

			missing := 0
			for _, c := range checks {
				if c.value == "" {
					missing++
					_, _ = fmt.Fprintln(out, ui.Failure(c.name+" is missing"))
					continue
				}
				_, _ = fmt.Fprintln(out, ui.Success(c.name+" is set"))
			}
			if missing > 0 {
				return fmt.Errorf("%d of %d credentials are missing", missing, len(checks))
			}

			log.Info().Msg("All the environment variables seem to be set correctly, and a value has been retrieved for all of them.")
			return nil
		},
	}
}
