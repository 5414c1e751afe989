package tui

import tea "github.com/charmbracelet/bubbletea"

// RenderContext provides read-only context to sections for rendering.
type RenderContext struct {
	Styles Styles
	Title  string
	Batch  string
	Index  int
	Total  int
}

// Action identifies what a section wants the page to do.
type Action int

const (
	ActionJump Action = iota
	ActionReplay
	ActionQuit
)

// ActionMsg is returned by a section's Activate to ask the page for a
// navigation change without touching the navigator itself.
type ActionMsg struct {
	Action Action
	Index  int
}

func actionMsg(a ActionMsg) tea.Cmd {
	return func() tea.Msg { return a }
}
