package tui

import "github.com/charmbracelet/bubbles/textarea"

// Insert helpers splice fixed or templated text at the current cursor
// position in the content field.
type insertKind int

const (
	insertBullet insertKind = iota
	insertCheckbox
	insertHeading
	insertCodeFence
)

func applyInsert(ta *textarea.Model, k insertKind) {
	switch k {
	case insertBullet:
		ta.InsertString("- ")
	case insertCheckbox:
		ta.InsertString("- [ ] ")
	case insertHeading:
		ta.InsertString("## ")
	case insertCodeFence:
		// Leave the cursor on the blank line inside the fence.
		ta.InsertString("```\n\n```")
		ta.CursorUp()
	}
}
