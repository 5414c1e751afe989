package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rplrewind/rewind/internal/model"
)

// IntroSection is the title screen. Its call to action moves to section 2.
type IntroSection struct {
	data model.Section
}

func (s *IntroSection) Kind() model.SectionKind { return model.KindIntro }
func (s *IntroSection) Label() string           { return s.data.Label }

func (s *IntroSection) ActionLabel() string {
	if s.data.Action == "" {
		return "CONTINUE"
	}
	return s.data.Action
}

// Activate jumps to the section after the intro, like the original
// "explore" button. The navigator clamps it for one-section books.
func (s *IntroSection) Activate(_ RenderContext) tea.Cmd {
	return actionMsg(ActionMsg{Action: ActionJump, Index: 1})
}

func (s *IntroSection) View(ctx RenderContext, width, height int) string {
	st := ctx.Styles

	header := windowHeader(ctx, ctx.Title, width)

	parts := []string{
		st.Badge.Render("● CONNECTED"),
		"",
		headline(ctx, s.data.Heading, s.data.Subheading),
	}
	if s.data.Tagline != "" {
		parts = append(parts, "", st.Muted.Render(s.data.Tagline))
	}
	if s.data.Quote != "" {
		quoteWidth := min(max(20, width-8), 56)
		quote := st.Card.Width(quoteWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				st.Muted.Render("SYSTEM_MESSAGE"),
				st.Base.Render("\""+s.data.Quote+"\""),
			),
		)
		parts = append(parts, "", quote)
	}
	parts = append(parts, "", st.Button.Render(s.ActionLabel()+" →"), st.Muted.Render("press enter"))

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)

	footerLeft := st.Muted.Render(s.data.Footer)
	footerRight := st.Accent.Render(ctx.Batch + " • READY")
	gap := max(1, width-lipgloss.Width(footerLeft)-lipgloss.Width(footerRight))
	footer := footerLeft + strings.Repeat(" ", gap) + footerRight

	bodyHeight := max(1, height-2)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, body),
		footer,
	)
}
