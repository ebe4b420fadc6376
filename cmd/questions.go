package cmd

import (
	"github.com/chibuka/so-importer/internal/config"
	"github.com/chibuka/so-importer/ui"
	"github.com/spf13/cobra"
)

func newQuestionsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Retrieve Stack Overflow questions",
		Long: `Retrieve Stack Overflow questions matching the given criteria.

Every flag is validated before the API is called. Dates accept epoch seconds
or ISO-8601 values such as 2022-01-01 or 2022-01-01T12:00:00+02:00; dates
without an offset are read as UTC.

--min and --max are dates when sorting by activity or creation, and scores
when sorting by votes. They are ignored for every other sort.

Examples:
  so-importer questions --tagged "go;concurrency" --pagesize 50
  so-importer questions --sort votes --min 100 --order desc
  so-importer questions --sort creation --min 2024-01-01 --max 2024-02-01 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := config.RetrieveKey(log)
			token := config.RetrieveToken(log, cfg)

			body, err := api.GetQuestions(cmd.Context(), key, token, questionsParams(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if err := ui.RenderJSON(out, body); err != nil {
					return err
				}
				return apiError(body)
			}
			if ui.RenderAPIError(out, body) {
				return apiError(body)
			}
			ui.RenderQuestions(out, body)
			return nil
		},
	}

	f := cmd.Flags()
	f.String("filter", "", "The id of a filter, as returned by 'so-importer filters create'")
	f.String("page", "", "Which page of results to return, 1 is the first page")
	f.String("pagesize", "", "How many results per page, between 1 and 100")
	f.String("fromdate", "", "Only questions created from this date")
	f.String("todate", "", "Only questions created until this date")
	f.String("order", "", "Order of the results: asc or desc")
	f.String("min", "", "Minimum date or score, depending on --sort")
	f.String("max", "", "Maximum date or score, depending on --sort")
	f.String("sort", "", "Sort method: activity, votes, creation, hot, week or month")
	f.String("tagged", "", "Semicolon separated tags, questions must match all of them")
	f.BoolVar(&asJSON, "json", false, "Print the raw JSON response")

	return cmd
}
