package ui

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	gray   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	orange = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

func Success(msg string) string { return green.Render("✓ " + msg) }
func Failure(msg string) string { return red.Render("✗ " + msg) }
func Warning(msg string) string { return orange.Render("⚠ " + msg) }
func Hint(msg string) string    { return gray.Render(msg) }

// RenderAPIError prints the error carried by an API response body and
// reports whether there was one.
func RenderAPIError(w io.Writer, body map[string]any) bool {
	name, ok := body["error_name"]
	if !ok {
		return false
	}
	_, _ = fmt.Fprintf(w, "%s\n", Failure(fmt.Sprintf("API error %s %s: %s",
		text(body["error_id"]), text(name), text(body["error_message"]))))
	return true
}

// RenderJSON pretty prints body
func RenderJSON(w io.Writer, body any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(body)
}

// RenderQuestions prints one block per question of a questions response,
// followed by paging and quota information.
func RenderQuestions(w io.Writer, body map[string]any) {
	items, _ := body["items"].([]any)
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, Hint("No questions found."))
	}

	for i, raw := range items {
		q, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		connector := "├─"
		if i == len(items)-1 {
			connector = "└─"
		}
		renderQuestion(w, connector, q)
	}

	renderFooter(w, body)
}

func renderQuestion(w io.Writer, connector string, q map[string]any) {
	status := gray.Render("○")
	if answered, _ := q["is_answered"].(bool); answered {
		status = green.Render("✓")
	}

	title := html.UnescapeString(text(q["title"]))
	if title == "" {
		title = "#" + text(q["question_id"])
	}
	_, _ = fmt.Fprintf(w, "%s %s %s\n", connector, status, cyan.Render(title))

	var stats []string
	for _, f := range []struct{ key, label string }{
		{"score", "score"},
		{"answer_count", "answers"},
		{"view_count", "views"},
	} {
		if v, ok := q[f.key]; ok {
			stats = append(stats, fmt.Sprintf("%s %s", text(v), f.label))
		}
	}

	indent := "     "
	if len(stats) > 0 {
		_, _ = fmt.Fprintln(w, indent+gray.Render(strings.Join(stats, " · ")))
	}
	if tags, ok := q["tags"].([]any); ok && len(tags) > 0 {
		names := make([]string, 0, len(tags))
		for _, t := range tags {
			names = append(names, "["+text(t)+"]")
		}
		_, _ = fmt.Fprintln(w, indent+orange.Render(strings.Join(names, " ")))
	}
	if link := text(q["link"]); link != "" {
		_, _ = fmt.Fprintln(w, indent+gray.Render(link))
	}
}

func renderFooter(w io.Writer, body map[string]any) {
	var parts []string
	if page, ok := body["page"]; ok {
		parts = append(parts, "page "+text(page))
	}
	if more, ok := body["has_more"].(bool); ok && more {
		parts = append(parts, "more results available")
	}
	if rem, ok := body["quota_remaining"]; ok {
		quota := "quota " + text(rem)
		if quotaMax, ok := body["quota_max"]; ok {
			quota += "/" + text(quotaMax)
		}
		parts = append(parts, quota)
	}
	if backoff, ok := body["backoff"]; ok {
		parts = append(parts, Warning("back off "+text(backoff)+"s"))
	}
	if len(parts) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, gray.Render(strings.Join(parts, " · ")))
	}
}

func text(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
