package search

import (
	"strings"
	"testing"
	"time"

	"jot-cli/internal/model"
)

func TestFilter(t *testing.T) {
	notes := []model.Note{
		{ID: "note-1", Title: "URGENT: call bank"},
		{ID: "note-2", Tags: []string{"urgent", "money"}},
		{ID: "note-3", Content: "nothing urgent here"},
		{ID: "note-4", Title: "Groceries", Content: "milk, eggs"},
	}

	got := Filter(notes, "urgent")
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}
	for i, want := range []string{"note-1", "note-2", "note-3"} {
		if got[i].ID != want {
			t.Fatalf("expected %q at %d, got %q", want, i, got[i].ID)
		}
	}

	if got := Filter(notes, "MILK"); len(got) != 1 || got[0].ID != "note-4" {
		t.Fatalf("expected case-insensitive content match, got %v", got)
	}
}

func TestFilter_EmptyQueryReturnsAllInOrder(t *testing.T) {
	notes := []model.Note{{ID: "note-b"}, {ID: "note-a"}}
	for _, q := range []string{"", "   "} {
		got := Filter(notes, q)
		if len(got) != 2 || got[0].ID != "note-b" || got[1].ID != "note-a" {
			t.Fatalf("Filter(%q): expected unfiltered store order, got %v", q, got)
		}
	}
}

func TestSnippet(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", EmptySnippet},
		{"   \n\t ", EmptySnippet},
		{"Buy milk", "Buy milk"},
		{"line one\n\n  line\ttwo", "line one line two"},
	}
	for _, tc := range cases {
		if got := Snippet(tc.in); got != tc.want {
			t.Fatalf("Snippet(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestSnippet_TruncatesAtBudget(t *testing.T) {
	long := strings.Repeat("abcde ", 20)
	got := Snippet(long)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis marker, got %q", got)
	}
	if n := len([]rune(strings.TrimSuffix(got, "…"))); n != SnippetLen {
		t.Fatalf("expected %d runes before the marker, got %d", SnippetLen, n)
	}

	// Exactly at the budget: no marker.
	exact := strings.Repeat("x", SnippetLen)
	if got := Snippet(exact); got != exact {
		t.Fatalf("expected %q unchanged, got %q", exact, got)
	}
}

func TestTagChips_CapsAtFour(t *testing.T) {
	tags := []string{"a", "b", "c", "d", "e", "f"}
	got := TagChips(tags)
	if len(got) != MaxChips {
		t.Fatalf("expected %d chips, got %d", MaxChips, len(got))
	}
	if got[0] != "a" || got[3] != "d" {
		t.Fatalf("expected the first %d tags, got %v", MaxChips, got)
	}
	if got := TagChips([]string{"a"}); len(got) != 1 {
		t.Fatalf("expected short tag lists unchanged, got %v", got)
	}
}

func TestUpdatedLabel(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC), "Jan 2"},
		{time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC), "Jan 2 2024"},
	}
	for _, tc := range cases {
		if got := UpdatedLabel(tc.t, now); got != tc.want {
			t.Fatalf("UpdatedLabel(%v): expected %q, got %q", tc.t, tc.want, got)
		}
	}
}
