package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rplrewind/rewind/internal/model"
)

// ClosingSection is the farewell screen. Its call to action replays the
// yearbook from the start.
type ClosingSection struct {
	data model.Section
}

func (s *ClosingSection) Kind() model.SectionKind { return model.KindClosing }
func (s *ClosingSection) Label() string           { return s.data.Label }

func (s *ClosingSection) ActionLabel() string {
	if s.data.Action == "" {
		return "REPLAY"
	}
	return s.data.Action
}

func (s *ClosingSection) Activate(_ RenderContext) tea.Cmd {
	return actionMsg(ActionMsg{Action: ActionReplay})
}

func (s *ClosingSection) View(ctx RenderContext, width, height int) string {
	st := ctx.Styles
	header := windowHeader(ctx, "END_SESSION.LOG", width)

	parts := []string{
		st.Success.Render("■ MISSION ACCOMPLISHED"),
		"",
		headline(ctx, s.data.Heading, s.data.Subheading),
	}
	if s.data.Tagline != "" {
		parts = append(parts, "", st.Danger.Render("✺ "+s.data.Tagline+" ✺"))
	}
	if len(s.data.Status) > 0 {
		var cells []string
		for _, item := range s.data.Status {
			cells = append(cells, st.Card.Render(st.CardTitle.Render(item)))
		}
		parts = append(parts, "", lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	parts = append(parts,
		"",
		st.Button.Render("↻ "+s.ActionLabel())+"  "+st.Muted.Render("enter / r"),
		"",
		st.Danger.Render("⏻ POWER OFF")+"  "+st.Muted.Render("q"),
	)

	footer := st.Muted.Render(s.data.Footer)
	bodyHeight := max(1, height-lipgloss.Height(header)-lipgloss.Height(footer))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, parts...)),
		footer,
	)
}
