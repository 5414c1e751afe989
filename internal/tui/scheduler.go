package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// cooldownMsg delivers a navigator callback back onto the program loop.
type cooldownMsg struct {
	fire func()
}

// tickScheduler implements nav.Scheduler on top of tea.Tick. Callbacks are
// collected while Update runs and returned as commands, so the unlock is
// executed inside Update like any other message.
type tickScheduler struct {
	pending []tea.Cmd
}

func (s *tickScheduler) AfterFunc(d time.Duration, fn func()) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return cooldownMsg{fire: fn}
	}))
}

// drain returns the commands scheduled since the last call.
func (s *tickScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
