package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"jot-cli/internal/model"
	"jot-cli/internal/search"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type noteItem struct {
	note model.Note
}

func (it noteItem) FilterValue() string {
	return it.note.Title + " " + strings.Join(it.note.Tags, " ") + " " + it.note.Content
}

func (it noteItem) rowTitle() string {
	if t := strings.TrimSpace(it.note.Title); t != "" {
		return t
	}
	return "Untitled"
}

// noteDelegate renders a three-line row: title, updated label + snippet, tag
// chips.
type noteDelegate struct {
	title    lipgloss.Style
	selected lipgloss.Style
	now      func() time.Time
}

func newNoteDelegate() noteDelegate {
	return noteDelegate{
		title:    lipgloss.NewStyle().Bold(true),
		selected: lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true),
		now:      time.Now,
	}
}

func (d noteDelegate) Height() int  { return 3 }
func (d noteDelegate) Spacing() int { return 1 }
func (d noteDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d noteDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(noteItem)
	if !ok {
		return
	}
	contentW := m.Width()
	if contentW < 8 {
		fmt.Fprint(w, "")
		return
	}

	titleStyle := d.title
	if index == m.Index() {
		titleStyle = d.selected
	}

	title := fitLine(it.rowTitle(), contentW)
	meta := fitLine(search.UpdatedLabel(it.note.UpdatedAt, d.now())+"  "+search.Snippet(it.note.Content), contentW)

	chips := ""
	if tags := search.TagChips(it.note.Tags); len(tags) > 0 {
		chip := styleChip()
		parts := make([]string, 0, len(tags))
		for _, t := range tags {
			parts = append(parts, chip.Render(t))
		}
		chips = lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, " "))
		if xansi.StringWidth(chips) > contentW {
			chips = xansi.Cut(chips, 0, contentW)
		}
	}

	fmt.Fprint(w, titleStyle.Render(title)+"\n"+styleMuted().Render(meta)+"\n"+chips)
}

// fitLine pads or cuts to exactly the given cell width.
func fitLine(s string, w int) string {
	lw := xansi.StringWidth(s)
	if lw < w {
		return s + strings.Repeat(" ", w-lw)
	}
	if lw > w {
		return xansi.Cut(s, 0, w)
	}
	return s
}

func newNotesList() list.Model {
	l := list.New([]list.Item{}, newNoteDelegate(), 0, 0)
	l.Title = "Notes"
	l.SetShowTitle(true)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	// The app drives filtering through its own query input.
	l.SetFilteringEnabled(false)
	l.SetShowFilter(false)
	return l
}

func selectNoteByID(l *list.Model, id string) {
	for i, item := range l.Items() {
		if it, ok := item.(noteItem); ok && it.note.ID == id {
			l.Select(i)
			return
		}
	}
}
