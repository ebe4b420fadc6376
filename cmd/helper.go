// cmd/helper.go
package cmd

import (
	"fmt"

	"github.com/chibuka/so-importer/internal/params"
	"github.com/spf13/cobra"
)

// questionsParams collects the questions flags. Flags the user did not set
// stay nil so they never reach the query.
func questionsParams(cmd *cobra.Command) params.QuestionsParams {
	flags := cmd.Flags()
	changed := func(name string) any {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return v
	}

	p := params.QuestionsParams{
		Page:     changed("page"),
		PageSize: changed("pagesize"),
		FromDate: changed("fromdate"),
		ToDate:   changed("todate"),
		Order:    changed("order"),
		Min:      changed("min"),
		Max:      changed("max"),
		Sort:     changed("sort"),
	}
	p.Filter, _ = flags.GetString("filter")
	p.Tagged, _ = flags.GetString("tagged")
	return p
}

// apiError returns an error when body is a Stack Exchange error response
func apiError(body map[string]any) error {
	name, ok := body["error_name"]
	if !ok {
		return nil
	}
	return fmt.Errorf("api error %v %v: %v", body["error_id"], name, body["error_message"])
}
