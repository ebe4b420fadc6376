package client

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFilter(t *testing.T) {
	srv, rec, _ := newTestServer(t, http.StatusOK,
		`{"items":[{"filter":"!)GrKmj4SO9s6)An","filter_type":"safe"}],"has_more":false}`)
	var buf bytes.Buffer
	c := newTestClient(srv, &buf)

	body, err := c.CreateFilter(context.Background(), "key", "token", FilterSpec{
		Base:    "none",
		Include: IncludeDefault + IncludeQuestion,
	})
	require.NoError(t, err)

	assert.Equal(t, "/2.3/filters/create", rec.path)
	assert.Equal(t, "none", rec.query.Get("base"))
	assert.Equal(t, IncludeDefault+IncludeQuestion, rec.query.Get("include"))
	assert.False(t, rec.query.Has("exclude"))
	assert.Equal(t, "false", rec.query.Get("unsafe"))

	assert.Equal(t, "!)GrKmj4SO9s6)An", FilterID(body))
}

func TestCreateFilter_RequiresBase(t *testing.T) {
	srv, _, calls := newTestServer(t, http.StatusOK, `{}`)
	var buf bytes.Buffer
	c := newTestClient(srv, &buf)

	_, err := c.CreateFilter(context.Background(), "", "", FilterSpec{Exclude: "question.body"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter")
	assert.Equal(t, int32(0), calls.Load())
}

func TestFilterID(t *testing.T) {
	cases := []struct {
		name string
		body map[string]any
		want string
	}{
		{"nil body", nil, ""},
		{"no items", map[string]any{}, ""},
		{"empty items", map[string]any{"items": []any{}}, ""},
		{"item not an object", map[string]any{"items": []any{"x"}}, ""},
		{"no filter field", map[string]any{"items": []any{map[string]any{}}}, ""},
		{"filter", map[string]any{"items": []any{map[string]any{"filter": "abc"}}}, "abc"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, FilterID(c.body))
		})
	}
}
