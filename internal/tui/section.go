package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rplrewind/rewind/internal/model"
)

// Section renders one full-screen unit of the yearbook.
type Section interface {
	Kind() model.SectionKind
	Label() string
	View(ctx RenderContext, width, height int) string
}

// Activatable is implemented by sections with a call to action.
type Activatable interface {
	Activate(ctx RenderContext) tea.Cmd
	ActionLabel() string
}

// newSection builds the renderer for one section of content.
func newSection(s model.Section) (Section, error) {
	switch s.Kind {
	case model.KindIntro:
		return &IntroSection{data: s}, nil
	case model.KindStats:
		return &StatsSection{data: s}, nil
	case model.KindMoments:
		return &MomentsSection{data: s}, nil
	case model.KindMessages:
		return &MessagesSection{data: s}, nil
	case model.KindClosing:
		return &ClosingSection{data: s}, nil
	}
	return nil, fmt.Errorf("no renderer for section kind %q", s.Kind)
}

// windowHeader renders the "title bar" strip used at the top of sections.
func windowHeader(ctx RenderContext, title string, width int) string {
	left := ctx.Styles.StatusLine.Bold(true).Render(" " + title + " ")
	right := ctx.Styles.StatusLine.Render(fmt.Sprintf(" %02d/%02d ", ctx.Index+1, ctx.Total))
	gap := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + ctx.Styles.StatusLine.Render(strings.Repeat(" ", gap)) + right
}

// headline renders a two-line heading, second line in the accent colour.
func headline(ctx RenderContext, heading, subheading string) string {
	var lines []string
	if heading != "" {
		lines = append(lines, ctx.Styles.Heading.Render(heading))
	}
	if subheading != "" {
		lines = append(lines, ctx.Styles.Accent.Render(subheading))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
