package tui

import (
	"context"
	"testing"
	"time"

	"jot-cli/internal/model"
	"jot-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel(t *testing.T) (appModel, store.Store) {
	t.Helper()
	s := store.Store{Dir: t.TempDir()}
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	notes := []model.Note{
		{ID: "note-b", Title: "Bravo", Content: "second", CreatedAt: base, UpdatedAt: base.Add(time.Hour)},
		{ID: "note-a", Title: "Alpha", Content: "first", CreatedAt: base, UpdatedAt: base},
	}
	if err := s.Save(context.Background(), notes); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// saver stays nil: Notify/Stop are nil-safe and the tests drive
	// autosave by sending autosaveFiredMsg directly.
	return newAppModel(s, store.Config{}, notes, "note-b"), s
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSwitchActive_CommitsPreviousEdit(t *testing.T) {
	m, s := testModel(t)

	m.titleInput.SetValue("Bravo edited")
	m.markDirty()
	_ = m.switchActive("note-a")

	if m.dirty {
		t.Fatalf("expected dirty flag cleared after switch")
	}
	if m.activeID != "note-a" {
		t.Fatalf("expected active note-a, got %q", m.activeID)
	}
	if got := m.titleInput.Value(); got != "Alpha" {
		t.Fatalf("expected editor reloaded with the new note, got title %q", got)
	}

	loaded := s.Load(context.Background())
	if len(loaded) != 2 || loaded[0].ID != "note-b" {
		t.Fatalf("expected the edited note persisted on top, got %v", loaded)
	}
	if loaded[0].Title != "Bravo edited" {
		t.Fatalf("expected edit committed before switching, got title %q", loaded[0].Title)
	}
}

func TestAutosaveFired_CommitsAndPersists(t *testing.T) {
	m, s := testModel(t)

	m.contentArea.SetValue("second, autosaved")
	m.markDirty()

	next, cmd := m.Update(autosaveFiredMsg{})
	m = next.(appModel)
	if cmd == nil {
		t.Fatalf("expected a status-clear tick after autosave")
	}
	if m.status != statusAutosaved {
		t.Fatalf("expected autosaved status, got %d", m.status)
	}
	if m.dirty {
		t.Fatalf("expected dirty flag cleared")
	}

	loaded := s.Load(context.Background())
	if loaded[0].Content != "second, autosaved" {
		t.Fatalf("expected autosave persisted, got %q", loaded[0].Content)
	}
}

func TestAutosaveFired_NoopWhenClean(t *testing.T) {
	m, _ := testModel(t)

	next, cmd := m.Update(autosaveFiredMsg{})
	m = next.(appModel)
	if cmd != nil || m.status != statusIdle {
		t.Fatalf("expected a clean model to ignore the timer")
	}
}

func TestDeleteConfirm_CancelKeepsNote(t *testing.T) {
	m, _ := testModel(t)

	next, _ := m.Update(keyRune('d'))
	m = next.(appModel)
	if !m.confirmDelete || m.confirmFocus != confirmFocusCancel {
		t.Fatalf("expected confirm modal open with cancel focused")
	}

	// Enter on Cancel dismisses without deleting.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(appModel)
	if m.confirmDelete {
		t.Fatalf("expected modal dismissed")
	}
	if len(m.notes) != 2 {
		t.Fatalf("expected both notes kept, got %d", len(m.notes))
	}
}

func TestDeleteConfirm_ConfirmDeletesAndReseats(t *testing.T) {
	m, s := testModel(t)

	next, _ := m.Update(keyRune('d'))
	m = next.(appModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(appModel)
	if m.confirmFocus != confirmFocusConfirm {
		t.Fatalf("expected tab to move focus to the delete button")
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(appModel)

	if len(m.notes) != 1 || m.notes[0].ID != "note-a" {
		t.Fatalf("expected only note-a left, got %v", m.notes)
	}
	if m.activeID != "note-a" {
		t.Fatalf("expected selection reseated on note-a, got %q", m.activeID)
	}
	loaded := s.Load(context.Background())
	if len(loaded) != 1 || loaded[0].ID != "note-a" {
		t.Fatalf("expected deletion persisted, got %v", loaded)
	}
}

func TestDeleteLastNote_SynthesizesBlank(t *testing.T) {
	s := store.Store{Dir: t.TempDir()}
	notes := []model.Note{{ID: "note-only", Title: "Only", UpdatedAt: time.Now().UTC()}}
	m := newAppModel(s, store.Config{}, notes, "note-only")

	next, _ := m.Update(keyRune('d'))
	m = next.(appModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(appModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(appModel)

	if len(m.notes) != 1 || m.notes[0].ID == "note-only" {
		t.Fatalf("expected a fresh blank note, got %v", m.notes)
	}
	if m.activeID != m.notes[0].ID {
		t.Fatalf("expected the blank note active, got %q", m.activeID)
	}
}

func TestMarkDirty_ShowsSavingStatus(t *testing.T) {
	m, _ := testModel(t)
	m.markDirty()
	if m.status != statusSaving {
		t.Fatalf("expected saving status after an edit, got %d", m.status)
	}
}

func TestStatusClear_IgnoresStaleSeq(t *testing.T) {
	m, _ := testModel(t)
	m.status = statusSaved
	m.statusSeq = 3

	next, _ := m.Update(statusClearMsg{seq: 2})
	m = next.(appModel)
	if m.status != statusSaved {
		t.Fatalf("expected stale clear ignored")
	}

	next, _ = m.Update(statusClearMsg{seq: 3})
	m = next.(appModel)
	if m.status != statusIdle {
		t.Fatalf("expected matching clear applied")
	}
}
