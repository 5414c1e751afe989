package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	indicatorBoxWidth = 4 // " 01 "
	minRailWidth      = 40
	chromeHeight      = 2 // progress bar + status line
)

// pageLayout holds the geometry shared by rendering and mouse hit-testing.
type pageLayout struct {
	contentWidth  int
	contentHeight int

	railX     int // first column of the indicator rail, after the gap
	railWidth int // 0 when the rail is hidden

	firstIndicatorY int
	indicatorStep   int
}

func (p *YearbookPage) layout() pageLayout {
	l := pageLayout{
		contentWidth:  p.width,
		contentHeight: max(1, p.height-chromeHeight),
	}
	if p.width < minRailWidth {
		return l
	}

	labelWidth := 0
	for _, s := range p.book.Sections {
		labelWidth = max(labelWidth, lipgloss.Width(s.Label))
	}
	l.railWidth = labelWidth + 1 + indicatorBoxWidth
	l.contentWidth = p.width - l.railWidth - 1
	l.railX = l.contentWidth + 1

	n := len(p.book.Sections)
	l.indicatorStep = 2
	if 2*n-1 > l.contentHeight {
		l.indicatorStep = 1
	}
	span := (n-1)*l.indicatorStep + 1
	l.firstIndicatorY = max(0, (l.contentHeight-span)/2)
	return l
}

// indicatorAt maps a click to the section whose indicator is under it.
func (p *YearbookPage) indicatorAt(x, y int) (int, bool) {
	l := p.layout()
	if l.railWidth == 0 || x < l.railX || x >= l.railX+l.railWidth {
		return 0, false
	}
	dy := y - l.firstIndicatorY
	if dy < 0 || dy%l.indicatorStep != 0 {
		return 0, false
	}
	idx := dy / l.indicatorStep
	if idx >= len(p.book.Sections) || y >= l.contentHeight {
		return 0, false
	}
	return idx, true
}

// renderIndicators draws one numbered control per section; the active one
// is highlighted and shows its label.
func (p *YearbookPage) renderIndicators(l pageLayout) string {
	lines := make([]string, l.contentHeight)
	current := p.nav.Current()
	row := lipgloss.NewStyle().Width(l.railWidth).Align(lipgloss.Right)

	for i, s := range p.book.Sections {
		y := l.firstIndicatorY + i*l.indicatorStep
		if y >= len(lines) {
			break
		}
		num := fmt.Sprintf("%02d", i+1)
		if i == current {
			lines[y] = row.Render(p.styles.IndicatorLabel.Render(s.Label) + " " + p.styles.IndicatorActive.Render(" "+num+" "))
		} else {
			lines[y] = row.Render(p.styles.Indicator.Render("[" + num + "]"))
		}
	}
	for i := range lines {
		if lines[i] == "" {
			lines[i] = strings.Repeat(" ", l.railWidth)
		}
	}
	return strings.Join(lines, "\n")
}

// progressCells returns how many of width cells the progress bar fills.
func progressCells(progress float64, width int) int {
	if width <= 0 {
		return 0
	}
	return max(0, min(width, int(math.Round(progress*float64(width)))))
}

func (p *YearbookPage) renderProgressBar(width int) string {
	filled := progressCells(p.nav.Progress(), width)
	return p.styles.ProgressFill.Render(strings.Repeat("━", filled)) +
		p.styles.ProgressTrack.Render(strings.Repeat("─", width-filled))
}

// renderStatusLine renders the status/help line at the bottom of the screen.
func (p *YearbookPage) renderStatusLine(width int) string {
	base := p.styles.StatusLine

	veryNarrow := width < 60
	narrow := width < 90

	var label string
	if s := p.section(); s != nil {
		label = s.Label()
	}
	left := fmt.Sprintf(" [%s] %d/%d ", label, p.nav.Current()+1, p.nav.Total())
	if veryNarrow {
		left = fmt.Sprintf(" %d/%d ", p.nav.Current()+1, p.nav.Total())
	}

	var help string
	switch {
	case p.HasModal():
		help = "ESC: Close"
	case veryNarrow:
		help = "↑↓ • 1-9 • ? • q"
	case narrow:
		help = "Wheel/↑↓: Scroll • 1-9: Jump • ?: Help • q: Quit"
	default:
		help = "Wheel/↑↓: Scroll • Click/1-9: Jump • Enter: Action • ?: Help • q: Power off"
	}

	right := " ● READY "
	if p.nav.Locked() {
		right = " ◌ COOLING "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	center := help
	if lipgloss.Width(center) > gap {
		center = truncate(center, max(0, gap))
	}
	pad := max(0, gap-lipgloss.Width(center))
	center = strings.Repeat(" ", pad/2) + center + strings.Repeat(" ", pad-pad/2)

	return base.MaxWidth(width).Render(left + center + right)
}
