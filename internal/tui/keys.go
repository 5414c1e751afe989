package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the yearbook key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Wheel equivalents, throttled like the wheel
	Next key.Binding
	Prev key.Binding

	// Manual navigation, never throttled
	Jump  key.Binding
	First key.Binding
	Last  key.Binding

	// Section actions
	Activate key.Binding
	Replay   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "power off"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),

		Next: key.NewBinding(
			key.WithKeys("down", "j", "pgdown", " "),
			key.WithHelp("↓/j/space", "next section"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑/k", "previous section"),
		),

		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to section"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first section"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last section"),
		),

		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "section action"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay (closing)"),
		),
	}
}

// HelpBindings returns the bindings listed by the help modal, in order.
func (k KeyMap) HelpBindings() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Jump, k.First, k.Last, k.Activate, k.Replay, k.Help, k.Quit, k.ForceQuit}
}
