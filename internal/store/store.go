package store

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"jot-cli/internal/model"
)

const dbFileName = "jot.sqlite"

// Store owns the canonical note collection and its persistence.
// Dir is the data directory holding the single sqlite file.
type Store struct {
	Dir string
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, dbFileName)
}

// NewBlankNote returns a fresh note with empty fields. CreatedAt and
// UpdatedAt start equal; UpdatedAt moves on every commit.
func NewBlankNote() model.Note {
	now := time.Now().UTC()
	return model.Note{
		ID:        newNoteID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Bootstrap enforces the non-empty invariant after a load: an empty
// collection gets one blank note. Returns the collection and the active id
// (the first, most recently updated note).
func Bootstrap(notes []model.Note) ([]model.Note, string) {
	if len(notes) == 0 {
		notes = []model.Note{NewBlankNote()}
	}
	SortNotes(notes)
	return notes, notes[0].ID
}

// Commit copies editor fields into the note with the given id, refreshes
// UpdatedAt and re-sorts the collection. Only the committed note's sort key
// changes, so the stable sort keeps every untouched pair in its prior
// relative order. No-op when the id is not present.
func Commit(notes []model.Note, id string, f EditorFields) []model.Note {
	idx := indexOf(notes, id)
	if idx < 0 {
		return notes
	}
	n := &notes[idx]
	n.Title = strings.TrimSpace(f.Title)
	n.Tags = ParseTags(f.Tags)
	n.Content = f.Content
	n.UpdatedAt = time.Now().UTC()
	SortNotes(notes)
	return notes
}

// Delete removes the note with the given id. Deleting the last note
// synthesizes a blank one so the collection never goes empty. Returns the
// collection and the new active id (the first element).
func Delete(notes []model.Note, id string) ([]model.Note, string) {
	idx := indexOf(notes, id)
	if idx >= 0 {
		notes = append(notes[:idx], notes[idx+1:]...)
	}
	if len(notes) == 0 {
		notes = []model.Note{NewBlankNote()}
	}
	return notes, notes[0].ID
}

// SortNotes orders by UpdatedAt descending, ties keeping prior relative
// order.
func SortNotes(notes []model.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}

// FindNote returns a copy of the note with the given id.
func FindNote(notes []model.Note, id string) (model.Note, bool) {
	idx := indexOf(notes, id)
	if idx < 0 {
		return model.Note{}, false
	}
	return notes[idx], true
}

func indexOf(notes []model.Note, id string) int {
	id = strings.TrimSpace(id)
	for i := range notes {
		if notes[i].ID == id {
			return i
		}
	}
	return -1
}
