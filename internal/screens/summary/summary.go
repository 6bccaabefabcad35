package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bondten/internal/gems"
	"github.com/abhisek/bondten/internal/router"
	"github.com/abhisek/bondten/internal/screen"
	"github.com/abhisek/bondten/internal/session"
	"github.com/abhisek/bondten/internal/ui/layout"
	"github.com/abhisek/bondten/internal/ui/theme"
)

// SummaryScreen displays the end-of-session report.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// The finished session screen underneath pops itself on
			// reveal, so a single pop here lands back on home.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	// Title.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	// Duration.
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	// Stats line.
	statsLine := fmt.Sprintf("Rounds: %d        Correct: %d        Accuracy: %.0f%%",
		sum.Rounds, sum.Correct, sum.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.levelLine()))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Strategies divider.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Strategies")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Per-strategy results.
	for _, sr := range sum.StrategyResults {
		if sr.Attempted == 0 {
			continue
		}
		line := fmt.Sprintf("  %-18s %d/%d correct",
			sr.Strategy.DisplayName(), sr.Correct, sr.Attempted)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if sr.Correct == sr.Attempted {
			style = style.Foreground(theme.Success)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	// Coach's note when one slip pattern kept coming back.
	if sum.TopSlipCount > 1 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Coach's note")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		note := fmt.Sprintf("%s came up %d times", sum.TopSlip.Label(), sum.TopSlipCount)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(note)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(sum.TopSlip.Hint())))
		b.WriteString("\n")
	}

	// Gems section.
	if len(sum.Gems) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Gems")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, gem := range sum.Gems {
			line := fmt.Sprintf("  %s %s %s Gem · %s",
				gem.Type.Icon(),
				gem.Rarity.DisplayName(),
				gem.Type.DisplayName(),
				gem.Reason)
			style := lipgloss.NewStyle().Foreground(rarityColor(gem.Rarity))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				style.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// levelLine renders where the session started and ended on the level
// ladder, with the full path when the engine moved the learner around.
func (s *SummaryScreen) levelLine() string {
	sum := s.summary
	if len(sum.LevelPath) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("Level %d", sum.EndLevel))
	}

	parts := []string{fmt.Sprintf("%d", sum.StartLevel)}
	for _, ch := range sum.LevelPath {
		parts = append(parts, fmt.Sprintf("%d", ch.To))
	}

	style := lipgloss.NewStyle().Foreground(theme.Secondary)
	if sum.EndLevel > sum.StartLevel {
		style = style.Foreground(theme.Success)
	}
	return style.Render("Level path: " + strings.Join(parts, " > "))
}

// rarityColor returns the theme color for a gem rarity level.
func rarityColor(r gems.Rarity) color.Color {
	switch r {
	case gems.RarityRare:
		return theme.Secondary
	case gems.RarityEpic:
		return theme.Primary
	case gems.RarityLegendary:
		return theme.ArcadeYellow
	default:
		return theme.Text
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
