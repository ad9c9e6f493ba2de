package store

import "github.com/google/uuid"

// newNoteID returns note-<uuid>. Uniqueness is assumed from the generator's
// collision resistance and never separately validated.
func newNoteID() string {
	return "note-" + uuid.NewString()
}
