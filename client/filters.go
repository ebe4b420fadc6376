package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/chibuka/so-importer/internal/params"
	"github.com/go-playground/validator/v10"
)

// IncludeDefault keeps the wrapper fields needed to page through results
const IncludeDefault = ".backoff;" +
	".error_id;" +
	".error_message;" +
	".error_name;" +
	".has_more;" +
	".items;" +
	".page;" +
	".page_size;" +
	".quota_max;" +
	".quota_remaining;"

// IncludeQuestion keeps the question fields the importer stores
const IncludeQuestion = "question.tags;" +
	"question.is_answered;" +
	"question.view_count;" +
	"question.favourite_count;" +
	"question.upvote_count;" +
	"question.accepted_answer_id;" +
	"question.answer_count;" +
	"question.score;" +
	"question.creation_date;" +
	"question.question_id;" +
	"question.link;" +
	"question.title;"

// FilterSpec describes a filter to register with filters/create.
// See https://api.stackexchange.com/docs/filters
type FilterSpec struct {
	// Base is the filter the new one starts from, e.g. "default" or "none"
	Base    string `validate:"required"`
	Include string
	Exclude string
	Unsafe  bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// CreateFilter registers a filter and returns the filters/create response.
func (c *Client) CreateFilter(ctx context.Context, key, accessToken string, spec FilterSpec) (map[string]any, error) {
	if err := validate.Struct(spec); err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}

	p := params.NewValues()
	p.Set("base", spec.Base)
	if spec.Include != "" {
		p.Set("include", spec.Include)
	}
	if spec.Exclude != "" {
		p.Set("exclude", spec.Exclude)
	}
	p.Set("unsafe", strconv.FormatBool(spec.Unsafe))

	return c.Query(ctx, "filters/create", key, accessToken, p)
}

// FilterID extracts the filter id from a filters/create response, or ""
// when the response carries none.
func FilterID(body map[string]any) string {
	items, ok := body["items"].([]any)
	if !ok || len(items) == 0 {
		return ""
	}
	item, ok := items[0].(map[string]any)
	if !ok {
		return ""
	}
	id, _ := item["filter"].(string)
	return id
}
