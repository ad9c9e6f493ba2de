package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

func renderConfirmModal(width int, title string, body string, focus confirmModalFocus) string {
	btnBase := lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted)
	btnActive := lipgloss.NewStyle().Padding(0, 1).
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render("Delete")
	cancel := btnBase.Render("Cancel")
	if focus == confirmFocusConfirm {
		confirm = btnActive.Render("Delete")
	}
	if focus == confirmFocusCancel {
		cancel = btnActive.Render("Cancel")
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, " ", cancel)

	bodyW := width - 8
	if bodyW < 24 {
		bodyW = 24
	}
	help := styleMuted().Render("tab: focus   enter: select   esc: cancel")

	content := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render(title),
		"",
		lipgloss.NewStyle().Width(bodyW).Render(body),
		"",
		controls,
		"",
		help,
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Render(content)
}
