package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var body map[string]any
	require.NoError(t, dec.Decode(&body))
	return body
}

func TestRenderQuestions(t *testing.T) {
	body := decode(t, `{
		"items": [
			{"question_id": 1, "title": "How do I use &quot;go mod&quot;?", "is_answered": true,
			 "score": 42, "answer_count": 3, "view_count": 1000, "tags": ["go", "modules"],
			 "link": "https://stackoverflow.com/q/1"},
			{"question_id": 2, "score": -1}
		],
		"has_more": true, "quota_remaining": 9990, "quota_max": 10000, "page": 1
	}`)

	var buf bytes.Buffer
	RenderQuestions(&buf, body)
	out := buf.String()

	assert.Contains(t, out, `How do I use "go mod"?`)
	assert.Contains(t, out, "42 score")
	assert.Contains(t, out, "3 answers")
	assert.Contains(t, out, "1000 views")
	assert.Contains(t, out, "[go] [modules]")
	assert.Contains(t, out, "https://stackoverflow.com/q/1")
	assert.Contains(t, out, "#2")
	assert.Contains(t, out, "-1 score")
	assert.Contains(t, out, "more results available")
	assert.Contains(t, out, "quota 9990/10000")
	assert.Contains(t, out, "page 1")
	assert.Less(t, strings.Index(out, "go mod"), strings.Index(out, "#2"))
}

func TestRenderQuestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderQuestions(&buf, decode(t, `{"items":[],"has_more":false}`))
	assert.Contains(t, buf.String(), "No questions found.")
	assert.NotContains(t, buf.String(), "more results")
}

func TestRenderQuestions_Backoff(t *testing.T) {
	var buf bytes.Buffer
	RenderQuestions(&buf, decode(t, `{"items":[],"backoff":10}`))
	assert.Contains(t, buf.String(), "back off 10s")
}

func TestRenderAPIError(t *testing.T) {
	var buf bytes.Buffer
	ok := RenderAPIError(&buf, decode(t, `{"error_id":502,"error_name":"throttle_violation","error_message":"too many requests"}`))
	assert.True(t, ok)
	assert.Contains(t, buf.String(), "502 throttle_violation: too many requests")

	buf.Reset()
	assert.False(t, RenderAPIError(&buf, decode(t, `{"items":[]}`)))
	assert.Empty(t, buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, decode(t, `{"items":[{"link":"https://x.test/?a=1&b=2"}],"quota_max":300}`)))

	assert.Contains(t, buf.String(), "\n  \"items\": [")
	assert.Contains(t, buf.String(), "a=1&b=2")
	assert.Contains(t, buf.String(), `"quota_max": 300`)
}
