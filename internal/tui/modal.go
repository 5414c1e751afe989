package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is a self-contained overlay that owns its Update/View lifecycle.
// The topmost modal receives all input and renders full-screen.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	View(width, height int) string
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (p *YearbookPage) PushModal(modal Modal) {
	for _, existing := range p.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	p.modalStack = append(p.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (p *YearbookPage) PopModal() {
	if len(p.modalStack) > 0 {
		p.modalStack = p.modalStack[:len(p.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (p *YearbookPage) TopModal() Modal {
	if len(p.modalStack) == 0 {
		return nil
	}
	return p.modalStack[len(p.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (p *YearbookPage) HasModal() bool {
	return len(p.modalStack) > 0
}

// HelpModal lists the controls in a scrollable viewport.
type HelpModal struct {
	viewport      viewport.Model
	styles        Styles
	keys          KeyMap
	content       string
	reverseScroll bool
}

func NewHelpModal(p *YearbookPage) *HelpModal {
	return &HelpModal{
		viewport:      viewport.New(80, 20),
		styles:        p.styles,
		keys:          p.keys,
		content:       helpContent(p),
		reverseScroll: p.opts.ReverseScrollWheel,
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.Help), key.Matches(msg, h.keys.Escape), key.Matches(msg, h.keys.Quit):
			return true, nil
		case key.Matches(msg, h.keys.Prev):
			h.viewport.ScrollUp(1)
			return false, nil
		case key.Matches(msg, h.keys.Next):
			h.viewport.ScrollDown(1)
			return false, nil
		}
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return false, cmd

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return false, nil
		}
		up := msg.Button == tea.MouseButtonWheelUp
		down := msg.Button == tea.MouseButtonWheelDown
		if h.reverseScroll {
			up, down = down, up
		}
		switch {
		case up:
			h.viewport.ScrollUp(1)
		case down:
			h.viewport.ScrollDown(1)
		}
	}
	return false, nil
}

func (h *HelpModal) View(width, height int) string {
	modalWidth := max(20, width-8)
	modalHeight := max(6, height-4)
	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	h.viewport.Width = contentWidth
	h.viewport.Height = contentHeight
	h.viewport.SetContent(lipgloss.NewStyle().Width(contentWidth).Render(h.content))

	header := h.styles.Accent.Width(contentWidth).Render("Help")
	status := h.styles.Muted.Render("↑↓/Wheel: Scroll | ?/ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left, header, h.viewport.View(), status)
	framed := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(h.styles.Skin.Accent)).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, framed)
}

func helpContent(p *YearbookPage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s // %s\n\n", p.book.Title, p.book.Batch)

	b.WriteString("CONTROLS:\n")
	for _, kb := range p.keys.HelpBindings() {
		h := kb.Help()
		fmt.Fprintf(&b, "  %-14s %s\n", h.Key, h.Desc)
	}
	fmt.Fprintf(&b, "  %-14s %s\n", "wheel", "scroll one section per gesture")
	fmt.Fprintf(&b, "  %-14s %s\n", "click", "numbered indicator jumps to that section")

	b.WriteString("\nSECTIONS:\n")
	for i, s := range p.book.Sections {
		fmt.Fprintf(&b, "  %02d  %s\n", i+1, s.Label)
	}

	fmt.Fprintf(&b, "\nWheel and arrow keys move one section, then pause for %s.\n", p.opts.Cooldown)
	b.WriteString("Number keys and indicator clicks always move immediately.\n")
	return b.String()
}
