package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rplrewind/rewind/internal/skin"
)

// Styles are the lipgloss styles derived from a skin.
type Styles struct {
	Skin skin.Skin

	Base      lipgloss.Style
	Heading   lipgloss.Style
	Accent    lipgloss.Style
	Muted     lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Badge     lipgloss.Style
	Button    lipgloss.Style
	Success   lipgloss.Style
	Danger    lipgloss.Style

	Indicator       lipgloss.Style
	IndicatorActive lipgloss.Style
	IndicatorLabel  lipgloss.Style

	ProgressFill  lipgloss.Style
	ProgressTrack lipgloss.Style
	StatusLine    lipgloss.Style
}

// NewStyles builds the style set for a skin.
func NewStyles(s skin.Skin) Styles {
	fg := lipgloss.Color(s.Foreground)
	accent := lipgloss.Color(s.Accent)
	muted := lipgloss.Color(s.Muted)
	border := lipgloss.Color(s.Border)
	hl := lipgloss.Color(s.Highlight)

	return Styles{
		Skin: s,

		Base:    lipgloss.NewStyle().Foreground(fg),
		Heading: lipgloss.NewStyle().Foreground(fg).Bold(true),
		Accent:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(muted),
		Card: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Foreground(fg).Bold(true),
		Badge: lipgloss.NewStyle().
			Foreground(accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Background(accent).
			Foreground(hl).
			Bold(true).
			Padding(0, 2),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(s.Success)).Bold(true),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color(s.Danger)).Bold(true),

		Indicator: lipgloss.NewStyle().Foreground(muted),
		IndicatorActive: lipgloss.NewStyle().
			Background(border).
			Foreground(hl).
			Bold(true),
		IndicatorLabel: lipgloss.NewStyle().Foreground(accent).Bold(true),

		ProgressFill:  lipgloss.NewStyle().Foreground(accent),
		ProgressTrack: lipgloss.NewStyle().Foreground(muted),
		StatusLine: lipgloss.NewStyle().
			Background(border).
			Foreground(hl),
	}
}
