package store

import (
	"strings"
	"testing"

	"jot-cli/internal/model"
)

func TestParseTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ,  , ", nil},
		{"food", []string{"food"}},
		{"food, errands", []string{"food", "errands"}},
		{" food ,, errands ", []string{"food", "errands"}},
	}
	for _, tc := range cases {
		got := ParseTags(tc.in)
		if len(got) != len(tc.want) {
			t.Fatalf("ParseTags(%q): expected %v, got %v", tc.in, tc.want, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("ParseTags(%q): expected %v, got %v", tc.in, tc.want, got)
			}
		}
	}
}

func TestParseTags_CapsAtTwelve(t *testing.T) {
	got := ParseTags("a, b,,  c ,d,e,f,g,h,i,j,k,l,m")
	if len(got) != MaxTags {
		t.Fatalf("expected %d tags, got %d (%v)", MaxTags, len(got), got)
	}
	for _, tag := range got {
		if tag == "" || tag != strings.TrimSpace(tag) {
			t.Fatalf("expected trimmed non-empty tags, got %q in %v", tag, got)
		}
	}
	if got[len(got)-1] != "l" {
		t.Fatalf("expected the 13th segment dropped, got last tag %q", got[len(got)-1])
	}
}

func TestFieldsFor_JoinsTags(t *testing.T) {
	n := model.Note{Title: "Groceries", Tags: []string{"food", "errands"}, Content: "Buy milk"}
	f := FieldsFor(n)
	if f.Title != "Groceries" || f.Tags != "food, errands" || f.Content != "Buy milk" {
		t.Fatalf("unexpected fields: %+v", f)
	}
}
