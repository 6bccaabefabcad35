package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bondten/internal/ui/theme"
)

// ProgressBar displays a horizontal accuracy bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(strings.Repeat("█", filled))
	bar += lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("░", barWidth-filled))
	result += bar

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// RoundPips renders one dot per round of a session: filled for played
// rounds, bright for the current one, hollow for the rest.
func RoundPips(played, total int) string {
	if total <= 0 {
		return ""
	}
	if played < 0 {
		played = 0
	}
	if played > total {
		played = total
	}

	var b strings.Builder
	for i := range total {
		switch {
		case i < played:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("●"))
		case i == played:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("◉"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("○"))
		}
	}
	return b.String()
}
