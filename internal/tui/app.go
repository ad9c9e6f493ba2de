package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jot-cli/internal/autosave"
	"jot-cli/internal/export"
	"jot-cli/internal/model"
	"jot-cli/internal/search"
	"jot-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusTitle
	focusTags
	focusContent
)

type statusKind int

const (
	statusIdle statusKind = iota
	statusSaving
	statusSaved
	statusAutosaved
)

// autosaveFiredMsg re-enters the event loop when the debounce timer fires,
// so every commit and persist happens inside Update.
type autosaveFiredMsg struct{}

type statusClearMsg struct{ seq int }

type appModel struct {
	store store.Store
	cfg   store.Config

	notes    []model.Note
	activeID string
	// dirty means the editor holds uncommitted keystrokes for the active
	// note.
	dirty bool

	width  int
	height int
	focus  focusArea

	notesList   list.Model
	searchInput textinput.Model
	titleInput  textinput.Model
	tagsInput   textinput.Model
	contentArea textarea.Model

	preview       bool
	confirmDelete bool
	confirmFocus  confirmModalFocus

	status    statusKind
	statusSeq int
	flash     string

	saver *autosave.Debouncer
}

// Run loads the collection and starts the interactive TUI. A pending
// autosave is flushed before the program exits.
func Run(s store.Store) error {
	cfg := s.LoadConfig()
	applyThemePreference(cfg.Theme)

	notes, activeID := store.Bootstrap(s.Load(context.Background()))
	m := newAppModel(s, cfg, notes, activeID)

	var p *tea.Program
	m.saver = autosave.New(cfg.AutosaveQuiet(), func() {
		p.Send(autosaveFiredMsg{})
	})
	p = tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newAppModel(s store.Store, cfg store.Config, notes []model.Note, activeID string) appModel {
	m := appModel{
		store:    s,
		cfg:      cfg,
		notes:    notes,
		activeID: activeID,
		focus:    focusList,
	}

	m.notesList = newNotesList()

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search"
	m.searchInput.CharLimit = 256
	m.searchInput.Prompt = "/ "

	m.titleInput = textinput.New()
	m.titleInput.Placeholder = "Title"
	m.titleInput.CharLimit = 256

	m.tagsInput = textinput.New()
	m.tagsInput.Placeholder = "Tags (comma separated)"
	m.tagsInput.CharLimit = 512

	m.contentArea = textarea.New()
	m.contentArea.Placeholder = "Write…"
	// textarea defaults (bubbles v0.20 has a small default CharLimit).
	m.contentArea.CharLimit = 0

	m.refreshList()
	m.loadEditor()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case autosaveFiredMsg:
		if !m.dirty {
			return m, nil
		}
		cmd := m.commitAndPersist(statusAutosaved)
		return m, cmd

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = statusIdle
			m.flash = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.confirmDelete {
			return m.updateConfirm(msg)
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
	case "enter":
		m.confirmDelete = false
		if m.confirmFocus == confirmFocusConfirm {
			cmd := m.deleteActive()
			return m, cmd
		}
	case "esc", "ctrl+g":
		m.confirmDelete = false
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		cmd := m.quit()
		return m, cmd
	case "ctrl+s":
		cmd := m.commitAndPersist(statusSaved)
		return m, cmd
	case "ctrl+p":
		m.preview = !m.preview
		return m, nil
	case "tab", "shift+tab":
		m.cycleFocus(msg.String() == "shift+tab")
		return m, nil
	}

	switch m.focus {
	case focusList:
		return m.updateListKey(msg)
	case focusSearch:
		return m.updateSearchKey(msg)
	case focusTitle, focusTags:
		return m.updateFieldKey(msg)
	case focusContent:
		return m.updateContentKey(msg)
	}
	return m, nil
}

func (m appModel) updateListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		cmd := m.quit()
		return m, cmd
	case "n":
		cmd := m.newNote()
		return m, cmd
	case "d":
		if _, ok := store.FindNote(m.notes, m.activeID); !ok {
			return m, nil
		}
		m.confirmDelete = true
		m.confirmFocus = confirmFocusCancel
		return m, nil
	case "e":
		cmd := m.exportActive()
		return m, cmd
	case "y":
		if n, ok := store.FindNote(m.notes, m.activeID); ok {
			var cmd tea.Cmd
			if err := copyToClipboard(n.Content); err != nil {
				cmd = m.setFlash("clipboard: " + err.Error())
			} else {
				cmd = m.setFlash("Copied content")
			}
			return m, cmd
		}
		return m, nil
	case "/":
		m.setFocus(focusSearch)
		return m, nil
	case "enter":
		m.setFocus(focusTitle)
		return m, nil
	}

	before := m.selectedID()
	var cmd tea.Cmd
	m.notesList, cmd = m.notesList.Update(msg)
	if after := m.selectedID(); after != "" && after != before {
		switchCmd := m.switchActive(after)
		return m, tea.Batch(cmd, switchCmd)
	}
	return m, cmd
}

func (m appModel) updateSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchInput.SetValue("")
		m.refreshList()
		m.setFocus(focusList)
		return m, nil
	case "enter":
		m.setFocus(focusList)
		return m, nil
	}
	var cmd tea.Cmd
	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.refreshList()
	}
	return m, cmd
}

func (m appModel) updateFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.setFocus(focusList)
		return m, nil
	}
	var cmd tea.Cmd
	if m.focus == focusTitle {
		before := m.titleInput.Value()
		m.titleInput, cmd = m.titleInput.Update(msg)
		if m.titleInput.Value() != before {
			m.markDirty()
		}
	} else {
		before := m.tagsInput.Value()
		m.tagsInput, cmd = m.tagsInput.Update(msg)
		if m.tagsInput.Value() != before {
			m.markDirty()
		}
	}
	return m, cmd
}

func (m appModel) updateContentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.setFocus(focusList)
		return m, nil
	case "alt+b":
		applyInsert(&m.contentArea, insertBullet)
		m.markDirty()
		return m, nil
	case "alt+t":
		applyInsert(&m.contentArea, insertCheckbox)
		m.markDirty()
		return m, nil
	case "alt+h":
		applyInsert(&m.contentArea, insertHeading)
		m.markDirty()
		return m, nil
	case "alt+f":
		applyInsert(&m.contentArea, insertCodeFence)
		m.markDirty()
		return m, nil
	}
	var cmd tea.Cmd
	before := m.contentArea.Value()
	m.contentArea, cmd = m.contentArea.Update(msg)
	if m.contentArea.Value() != before {
		m.markDirty()
	}
	return m, cmd
}

// markDirty records an edit event: the status dot flips to saving and the
// debounce timer (re-)arms.
func (m *appModel) markDirty() {
	m.dirty = true
	m.status = statusSaving
	m.saver.Notify()
}

func (m *appModel) editorFields() store.EditorFields {
	return store.EditorFields{
		Title:   m.titleInput.Value(),
		Tags:    m.tagsInput.Value(),
		Content: m.contentArea.Value(),
	}
}

// commitAndPersist copies the editor into the active note, persists the
// whole collection and re-renders the list, keeping the active selection.
func (m *appModel) commitAndPersist(kind statusKind) tea.Cmd {
	m.saver.Stop()
	m.dirty = false
	m.notes = store.Commit(m.notes, m.activeID, m.editorFields())
	if err := m.store.Save(context.Background(), m.notes); err != nil {
		return m.setFlash("save failed: " + err.Error())
	}
	m.refreshList()
	m.status = kind
	return m.bumpStatus()
}

// switchActive commits the previous active note first (when dirty) so no
// edit is lost, then mirrors the newly selected note into the editor.
func (m *appModel) switchActive(id string) tea.Cmd {
	var cmd tea.Cmd
	if m.dirty {
		prev := m.activeID
		m.saver.Stop()
		m.dirty = false
		m.notes = store.Commit(m.notes, prev, m.editorFields())
		if err := m.store.Save(context.Background(), m.notes); err != nil {
			cmd = m.setFlash("save failed: " + err.Error())
		} else {
			m.status = statusSaved
			cmd = m.bumpStatus()
		}
	}
	m.activeID = id
	m.loadEditor()
	m.refreshList()
	return cmd
}

func (m *appModel) newNote() tea.Cmd {
	var cmds []tea.Cmd
	if m.dirty {
		cmds = append(cmds, m.commitAndPersist(statusSaved))
	}
	n := store.NewBlankNote()
	m.notes = append(m.notes, n)
	store.SortNotes(m.notes)
	m.activeID = n.ID
	if err := m.store.Save(context.Background(), m.notes); err != nil {
		cmds = append(cmds, m.setFlash("save failed: "+err.Error()))
	}
	m.searchInput.SetValue("")
	m.refreshList()
	m.loadEditor()
	m.setFocus(focusTitle)
	return tea.Batch(cmds...)
}

func (m *appModel) deleteActive() tea.Cmd {
	// The pending edit belongs to the note being destroyed; drop it.
	m.saver.Stop()
	m.dirty = false
	var active string
	m.notes, active = store.Delete(m.notes, m.activeID)
	m.activeID = active
	if err := m.store.Save(context.Background(), m.notes); err != nil {
		return m.setFlash("save failed: " + err.Error())
	}
	m.refreshList()
	m.loadEditor()
	return m.setFlash("Deleted")
}

func (m *appModel) exportActive() tea.Cmd {
	n, ok := store.FindNote(m.notes, m.activeID)
	if !ok {
		return nil
	}
	if m.dirty {
		_ = m.commitAndPersist(statusSaved)
		n, _ = store.FindNote(m.notes, m.activeID)
	}
	path, err := export.Write(m.cfg.ExportDir, n)
	if err != nil {
		return m.setFlash("export failed: " + err.Error())
	}
	return m.setFlash("Exported " + path)
}

func (m *appModel) quit() tea.Cmd {
	if m.dirty {
		m.saver.Stop()
		m.notes = store.Commit(m.notes, m.activeID, m.editorFields())
		_ = m.store.Save(context.Background(), m.notes)
	}
	return tea.Quit
}

func (m *appModel) loadEditor() {
	f, _ := store.FindNote(m.notes, m.activeID)
	fields := store.FieldsFor(f)
	m.titleInput.SetValue(fields.Title)
	m.tagsInput.SetValue(fields.Tags)
	m.contentArea.SetValue(fields.Content)
}

func (m *appModel) refreshList() {
	visible := search.Filter(m.notes, m.searchInput.Value())
	items := make([]list.Item, 0, len(visible))
	for _, n := range visible {
		items = append(items, noteItem{note: n})
	}
	m.notesList.SetItems(items)
	selectNoteByID(&m.notesList, m.activeID)
}

func (m *appModel) selectedID() string {
	if it, ok := m.notesList.SelectedItem().(noteItem); ok {
		return it.note.ID
	}
	return ""
}

func (m *appModel) setFocus(f focusArea) {
	m.focus = f
	m.searchInput.Blur()
	m.titleInput.Blur()
	m.tagsInput.Blur()
	m.contentArea.Blur()
	switch f {
	case focusSearch:
		m.searchInput.Focus()
	case focusTitle:
		m.titleInput.Focus()
	case focusTags:
		m.tagsInput.Focus()
	case focusContent:
		m.contentArea.Focus()
	}
}

func (m *appModel) cycleFocus(backwards bool) {
	order := []focusArea{focusList, focusTitle, focusTags, focusContent}
	cur := 0
	for i, f := range order {
		if f == m.focus {
			cur = i
			break
		}
	}
	if backwards {
		cur = (cur + len(order) - 1) % len(order)
	} else {
		cur = (cur + 1) % len(order)
	}
	m.setFocus(order[cur])
}

func (m *appModel) setFlash(s string) tea.Cmd {
	m.flash = s
	m.status = statusIdle
	return m.bumpStatus()
}

func (m *appModel) bumpStatus() tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg { return statusClearMsg{seq: seq} })
}

func (m *appModel) resize() {
	bodyH := m.height - 4
	if bodyH < 8 {
		bodyH = 8
	}
	leftW := m.width * 2 / 5
	if leftW < 30 {
		leftW = 30
	}
	rightW := m.width - leftW - 3
	if rightW < 30 {
		rightW = 30
	}

	m.notesList.SetSize(leftW, bodyH-2)
	m.searchInput.Width = leftW - 4
	m.titleInput.Width = rightW - 4
	m.tagsInput.Width = rightW - 4
	m.contentArea.SetWidth(rightW)
	contentH := bodyH - 6
	if contentH < 4 {
		contentH = 4
	}
	m.contentArea.SetHeight(contentH)
}

func (m appModel) View() string {
	header := lipgloss.NewStyle().Bold(true).
		Render(fmt.Sprintf("jot  %s  %d notes", m.store.Dir, len(m.notes)))

	leftW := m.width * 2 / 5
	if leftW < 30 {
		leftW = 30
	}
	rightW := m.width - leftW - 3
	if rightW < 30 {
		rightW = 30
	}

	left := m.searchInput.View() + "\n" + m.notesList.View()

	var content string
	if m.preview {
		n, _ := store.FindNote(m.notes, m.activeID)
		body := m.contentArea.Value()
		if !m.dirty {
			body = n.Content
		}
		content = renderMarkdown(body, rightW-2)
		if content == "" {
			content = styleMuted().Render(search.EmptySnippet)
		}
	} else {
		content = m.contentArea.View()
	}
	right := strings.Join([]string{
		m.titleInput.View(),
		m.tagsInput.View(),
		"",
		content,
	}, "\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(leftW).Render(left),
		lipgloss.NewStyle().
			Width(rightW).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorBorder).
			PaddingLeft(1).
			Render(right),
	)

	if m.confirmDelete {
		n, _ := store.FindNote(m.notes, m.activeID)
		title := strings.TrimSpace(n.Title)
		if title == "" {
			title = "Untitled"
		}
		modal := renderConfirmModal(m.width, "Delete note?",
			fmt.Sprintf("Delete %q? This cannot be undone.", title), m.confirmFocus)
		body = lipgloss.Place(m.width, lipgloss.Height(body), lipgloss.Center, lipgloss.Center, modal)
	}

	footer := styleMuted().Render("tab: focus  /: search  n: new  ctrl+s: save  d: delete  e: export  ctrl+p: preview  q: quit")
	if st := m.statusView(); st != "" {
		footer = st + "  " + footer
	}

	return strings.Join([]string{header, body, footer}, "\n")
}

func (m appModel) statusView() string {
	switch m.status {
	case statusSaving:
		return lipgloss.NewStyle().Foreground(colorSavingFg).Render("● Saving…")
	case statusSaved:
		return lipgloss.NewStyle().Foreground(colorSavedFg).Render("✓ Saved")
	case statusAutosaved:
		return lipgloss.NewStyle().Foreground(colorSavedFg).Render("✓ Autosaved")
	}
	if m.flash != "" {
		if strings.Contains(m.flash, "failed") {
			return lipgloss.NewStyle().Foreground(colorErrorFg).Render(m.flash)
		}
		return styleMuted().Render(m.flash)
	}
	return ""
}
