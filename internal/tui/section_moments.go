package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rplrewind/rewind/internal/model"
)

const fragmentCardWidth = 24

// MomentsSection shows memory fragments as a grid of "files".
type MomentsSection struct {
	data model.Section
}

func (s *MomentsSection) Kind() model.SectionKind { return model.KindMoments }
func (s *MomentsSection) Label() string           { return s.data.Label }

func (s *MomentsSection) View(ctx RenderContext, width, height int) string {
	st := ctx.Styles
	header := windowHeader(ctx, "MEMORY_DUMP", width)
	title := headline(ctx, s.data.Heading, s.data.Subheading)
	footer := st.Accent.Render(s.data.Footer)

	gridHeight := max(1, height-lipgloss.Height(header)-lipgloss.Height(title)-lipgloss.Height(footer)-2)
	grid := s.renderGrid(ctx, width, gridHeight)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, title),
		"",
		lipgloss.Place(width, gridHeight, lipgloss.Center, lipgloss.Top, grid),
		"",
		footer,
	)
}

func (s *MomentsSection) renderGrid(ctx RenderContext, width, height int) string {
	cols := max(1, width/(fragmentCardWidth+1))
	var cards []string
	for _, f := range s.data.Fragments {
		cards = append(cards, s.renderFragment(ctx, f))
	}

	var rows []string
	used := 0
	for i := 0; i < len(cards); i += cols {
		row := lipgloss.JoinHorizontal(lipgloss.Top, cards[i:min(i+cols, len(cards))]...)
		if used+lipgloss.Height(row) > height {
			break
		}
		used += lipgloss.Height(row)
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s *MomentsSection) renderFragment(ctx RenderContext, f model.Fragment) string {
	st := ctx.Styles
	icon, tag := fragmentIcon(f.Type)
	inner := fragmentCardWidth - 4

	name := truncate(f.Label, inner)
	meta := icon + " " + strings.ToUpper(tag) + " • " + f.Size
	nameStyle := st.CardTitle
	if f.Type == model.FragmentError {
		nameStyle = st.Danger
	}
	return st.Card.Width(fragmentCardWidth - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			nameStyle.Render(name),
			st.Muted.Render(truncate(meta, inner)),
		),
	)
}

func fragmentIcon(t model.FragmentType) (icon, tag string) {
	switch t {
	case model.FragmentImage:
		return "▣", "img"
	case model.FragmentText:
		return "≡", "txt"
	case model.FragmentError:
		return "✕", "err"
	default:
		return "?", string(t)
	}
}
