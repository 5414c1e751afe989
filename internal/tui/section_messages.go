package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rplrewind/rewind/internal/model"
)

const messageCardWidth = 38

// MessagesSection shows farewell notes as chat cards.
type MessagesSection struct {
	data model.Section
}

func (s *MessagesSection) Kind() model.SectionKind { return model.KindMessages }
func (s *MessagesSection) Label() string           { return s.data.Label }

func (s *MessagesSection) View(ctx RenderContext, width, height int) string {
	header := windowHeader(ctx, "INBOX", width)
	title := headline(ctx, s.data.Heading, s.data.Subheading)

	cardWidth := min(messageCardWidth, max(16, width-2))
	cols := max(1, width/(cardWidth+1))

	var cards []string
	for _, m := range s.data.Messages {
		cards = append(cards, s.renderMessage(ctx, m, cardWidth))
	}

	avail := max(1, height-lipgloss.Height(header)-lipgloss.Height(title)-1)
	var rows []string
	used := 0
	for i := 0; i < len(cards); i += cols {
		row := lipgloss.JoinHorizontal(lipgloss.Top, cards[i:min(i+cols, len(cards))]...)
		if used+lipgloss.Height(row) > avail {
			break
		}
		used += lipgloss.Height(row)
		rows = append(rows, row)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, title),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, rows...)),
	)
}

func (s *MessagesSection) renderMessage(ctx RenderContext, m model.Message, width int) string {
	st := ctx.Styles
	inner := width - 4

	avatarColor := lipgloss.Color(st.Skin.Accent)
	if m.Color != "" {
		avatarColor = lipgloss.Color(m.Color)
	}
	avatar := lipgloss.NewStyle().
		Foreground(avatarColor).
		Bold(true).
		Render("[" + m.Initial + "]")

	who := st.CardTitle.Render(truncate(m.Name, max(1, inner-lipgloss.Width(avatar)-1)))
	role := st.Muted.Render(truncate("@"+m.Role, inner))
	text := lipgloss.NewStyle().Width(inner).MaxHeight(2).Render(m.Text)

	return st.Card.Width(width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			avatar+" "+who,
			role,
			st.Base.Render(text),
		),
	)
}
