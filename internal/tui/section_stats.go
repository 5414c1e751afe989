package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/rplrewind/rewind/internal/model"
)

const (
	statsBarWidth = 4
	statsBarGap   = 1
)

// StatsSection lists class projects next to a bar chart of their stars.
type StatsSection struct {
	data model.Section
}

func (s *StatsSection) Kind() model.SectionKind { return model.KindStats }
func (s *StatsSection) Label() string           { return s.data.Label }

func (s *StatsSection) View(ctx RenderContext, width, height int) string {
	st := ctx.Styles
	header := windowHeader(ctx, "CLASS_REPO", width)
	title := headline(ctx, s.data.Heading, s.data.Subheading)

	bodyHeight := max(1, height-lipgloss.Height(header)-lipgloss.Height(title)-2)

	var body string
	if len(s.data.Projects) == 0 {
		body = lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, st.Muted.Render("No projects yet"))
	} else {
		listWidth := width
		chartWidth := 0
		if width >= 80 {
			chartWidth = min(width/2, len(s.data.Projects)*(statsBarWidth+statsBarGap)+4)
			listWidth = width - chartWidth - 2
		}
		list := s.renderList(ctx, listWidth, bodyHeight)
		if chartWidth > 0 {
			chart := s.renderChart(ctx, chartWidth, bodyHeight)
			body = lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", chart)
		} else {
			body = list
		}
	}

	footer := st.Muted.Render(s.data.Footer)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, title),
		"",
		body,
		footer,
	)
}

func (s *StatsSection) renderList(ctx RenderContext, width, height int) string {
	st := ctx.Styles
	var rows []string
	for i, p := range s.data.Projects {
		if len(rows)+2 > height {
			rows = append(rows, st.Muted.Render(fmt.Sprintf("+%d more", len(s.data.Projects)-i)))
			break
		}
		title := st.CardTitle.Render(truncate(p.Title, max(1, width-12)))
		stars := st.Accent.Render(fmt.Sprintf("★ %d", p.Stars))
		gap := max(1, width-lipgloss.Width(title)-lipgloss.Width(stars))
		rows = append(rows,
			title+strings.Repeat(" ", gap)+stars,
			st.Muted.Render(truncate(fmt.Sprintf("@%s • %s", p.Author, p.Tech), width)),
		)
	}
	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (s *StatsSection) renderChart(ctx RenderContext, width, height int) string {
	bc := barchart.New(width, max(4, height),
		barchart.WithBarGap(statsBarGap),
		barchart.WithBarWidth(statsBarWidth),
	)
	barStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ctx.Styles.Skin.Accent)).
		Background(lipgloss.Color(ctx.Styles.Skin.Accent))

	for _, p := range s.data.Projects {
		bc.Push(barchart.BarData{
			Label: chartLabel(p),
			Values: []barchart.BarValue{
				{Name: p.Title, Value: float64(p.Stars), Style: barStyle},
			},
		})
	}
	bc.Draw()
	return bc.View()
}

func chartLabel(p model.Project) string {
	label := p.ID
	if label == "" {
		label = p.Title
	}
	r := []rune(label)
	if len(r) > statsBarWidth {
		r = r[:statsBarWidth]
	}
	return string(r)
}
