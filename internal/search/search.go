// Package search holds the pure projection helpers behind the note list:
// filtering, snippets and timestamp labels. Nothing here mutates a note:
// same inputs, same output, no storage or rendering concerns.
package search

import (
	"fmt"
	"strings"
	"time"

	"jot-cli/internal/model"
)

// SnippetLen is the rune budget for list snippets before the ellipsis.
const SnippetLen = 42

// MaxChips caps how many tag chips a list row shows.
const MaxChips = 4

// EmptySnippet is shown for notes with no content.
const EmptySnippet = "(no content)"

// Filter returns the notes whose title, tags or content contain the query,
// case-insensitively. An empty (or whitespace) query returns the input
// unchanged, in store order.
func Filter(notes []model.Note, query string) []model.Note {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return notes
	}
	var out []model.Note
	for _, n := range notes {
		hay := strings.ToLower(n.Title + " " + strings.Join(n.Tags, " ") + " " + n.Content)
		if strings.Contains(hay, q) {
			out = append(out, n)
		}
	}
	return out
}

// Snippet collapses all whitespace runs to single spaces and truncates to
// SnippetLen runes with an ellipsis marker.
func Snippet(content string) string {
	s := strings.Join(strings.Fields(content), " ")
	if s == "" {
		return EmptySnippet
	}
	r := []rune(s)
	if len(r) <= SnippetLen {
		return s
	}
	return string(r[:SnippetLen]) + "…"
}

// TagChips returns at most MaxChips tags for a list row.
func TagChips(tags []string) []string {
	if len(tags) <= MaxChips {
		return tags
	}
	return tags[:MaxChips]
}

// UpdatedLabel renders a short "last updated" label relative to now:
// "just now", "5m ago", "3h ago", then a date once it's older than a day.
func UpdatedLabel(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case t.Year() == now.Year():
		return t.Format("Jan 2")
	default:
		return t.Format("Jan 2 2006")
	}
}
