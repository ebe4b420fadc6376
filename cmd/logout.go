package cmd

import (
	"fmt"
	"os"

	"github.com/chibuka/so-importer/internal/config"
	"github.com/chibuka/so-importer/ui"
	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored access token",
		Long: `Clear your local configuration, stored access token included.

You'll need to run 'so-importer auth' again to authenticate.

Example:
  so-importer logout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if cfg.AccessToken == "" {
				_, _ = fmt.Fprintln(out, ui.Hint("Already logged out"))
				return nil
			}

			if err := config.Clear(); err != nil {
				return fmt.Errorf("failed to clear credentials: %w", err)
			}
			cfg.AccessToken = ""

			_, _ = fmt.Fprintln(out, ui.Success("Logged out successfully!"))
			if os.Getenv(config.EnvPrefix+"_TOKEN") != "" {
				_, _ = fmt.Fprintln(out, ui.Warning("SO_IMPORTER_TOKEN is still set in your environment"))
			}
			return nil
		},
	}
}
