// Package export renders a note as a plain-text file named from its title.
package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jot-cli/internal/model"
)

// RenderText renders title, tags and update time followed by the raw
// content.
func RenderText(n model.Note) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	title := strings.TrimSpace(n.Title)
	if title == "" {
		title = "Untitled"
	}
	writeLn(title)
	if len(n.Tags) > 0 {
		writeLn("Tags: " + strings.Join(n.Tags, ", "))
	}
	writeLn("Updated: " + n.UpdatedAt.UTC().Format(time.RFC3339))
	writeLn("")
	writeLn(strings.TrimRight(n.Content, "\n"))
	return buf.String()
}

// Slugify lowercases the title, collapses every run of non-alphanumerics to
// a single "-" and strips leading/trailing separators. An empty result
// falls back to "note".
func Slugify(title string) string {
	var b strings.Builder
	prevSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevSep = false
		default:
			if !prevSep && b.Len() > 0 {
				b.WriteByte('-')
				prevSep = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "note"
	}
	return slug
}

// Write renders the note into dir as <slug>.txt and returns the path.
func Write(dir string, n model.Note) (string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	path := filepath.Join(dir, Slugify(n.Title)+".txt")
	if err := os.WriteFile(path, []byte(RenderText(n)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
