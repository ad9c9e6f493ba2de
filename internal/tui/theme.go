package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must stay readable on both light and dark terminal backgrounds, so
// colors are lipgloss.AdaptiveColor and "faint" styling is applied only on
// dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      = ac("240", "243")
	colorAccent     = ac("27", "62") // blue
	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")
	colorChipBg     = ac("252", "236")
	colorChipFg     = ac("238", "250")
	colorSavingFg   = ac("130", "178")
	colorSavedFg    = ac("28", "77")
	colorErrorFg    = ac("160", "203")
	colorBorder     = ac("250", "243")
)

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleChip() lipgloss.Style {
	return lipgloss.NewStyle().Padding(0, 1).Foreground(colorChipFg).Background(colorChipBg)
}

// applyThemePreference pins the palette before the program starts. Config
// wins, then JOT_TUI_THEME, then the COLORFGBG heuristic; otherwise lipgloss
// keeps its own detection.
func applyThemePreference(theme string) {
	// termenv.EnvColorProfile respects NO_COLOR/CLICOLOR_FORCE.
	lipgloss.SetColorProfile(termenv.EnvColorProfile())

	pick := strings.ToLower(strings.TrimSpace(theme))
	if pick == "" {
		pick = strings.ToLower(strings.TrimSpace(os.Getenv("JOT_TUI_THEME")))
	}
	switch pick {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	// COLORFGBG is often "fg;bg" (sometimes more segments); use the last
	// segment as the background.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
