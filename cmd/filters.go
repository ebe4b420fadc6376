package cmd

import (
	"errors"
	"fmt"

	"github.com/chibuka/so-importer/client"
	"github.com/chibuka/so-importer/internal/config"
	"github.com/chibuka/so-importer/ui"
	"github.com/spf13/cobra"
)

func newFiltersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Manage Stack Exchange API filters",
	}
	cmd.AddCommand(newFiltersCreateCmd())
	return cmd
}

func newFiltersCreateCmd() *cobra.Command {
	var spec client.FilterSpec

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a filter and print its id",
		Long: `Create a filter selecting the fields returned by the API.

By default the filter starts from "none" and keeps the paging fields and the
question fields the importer needs. Pass the printed id to
'so-importer questions --filter'.

Examples:
  so-importer filters create
  so-importer filters create --base default --exclude question.body`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			body, err := api.CreateFilter(cmd.Context(), config.RetrieveKey(log), config.RetrieveToken(log, cfg), spec)
			if err != nil {
				return err
			}
			if ui.RenderAPIError(out, body) {
				return apiError(body)
			}

			id := client.FilterID(body)
			if id == "" {
				return errors.New("the response carries no filter id")
			}
			log.Debug().Str("filter", id).Msg("filter created")
			_, _ = fmt.Fprintln(out, ui.Success("Filter created"))
			_, _ = fmt.Fprintln(out, id)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&spec.Base, "base", "none", "Filter to start from: default, withbody, none or total")
	f.StringVar(&spec.Include, "include", client.IncludeDefault+client.IncludeQuestion, "Semicolon separated fields to include")
	f.StringVar(&spec.Exclude, "exclude", "", "Semicolon separated fields to exclude")
	f.BoolVar(&spec.Unsafe, "unsafe", false, "Return unsafe, unescaped content")

	return cmd
}
