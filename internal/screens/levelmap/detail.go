package levelmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/router"
	"github.com/abhisek/bondten/internal/screen"
	"github.com/abhisek/bondten/internal/store"
	"github.com/abhisek/bondten/internal/strategy"
	"github.com/abhisek/bondten/internal/ui/layout"
	"github.com/abhisek/bondten/internal/ui/theme"
)

// LevelDetailScreen shows one level's strategies, problem shapes and
// lifetime stats.
type LevelDetailScreen struct {
	level   levels.Level
	current int
	stat    store.LevelStat
}

var _ screen.Screen = (*LevelDetailScreen)(nil)
var _ screen.KeyHintProvider = (*LevelDetailScreen)(nil)

func newLevelDetail(level levels.Level, current int, stat store.LevelStat) *LevelDetailScreen {
	return &LevelDetailScreen{level: level, current: current, stat: stat}
}

func (d *LevelDetailScreen) Init() tea.Cmd { return nil }

func (d *LevelDetailScreen) Title() string {
	return fmt.Sprintf("Level %d · %s", d.level.Number, d.level.Name)
}

func (d *LevelDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return d, nil
}

func (d *LevelDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *LevelDetailScreen) View(width, height int) string {
	lvl := d.level
	contentWidth := width - 8
	if contentWidth > 70 {
		contentWidth = 70
	}

	var b strings.Builder

	// Level name + standing.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  Level %d · %s", lvl.Number, lvl.Name)))
	b.WriteString("\n")
	b.WriteString("  " + d.standing())
	b.WriteString("\n\n")

	// Tagline.
	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(theme.Text).
		PaddingLeft(2).
		Render(lvl.Tagline))
	b.WriteString("\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	// Lifetime stats.
	if d.stat.Attempts > 0 {
		acc := float64(d.stat.Correct) / float64(d.stat.Attempts) * 100
		b.WriteString(dimStyle.Render("  Rounds:    ") + valStyle.Render(fmt.Sprintf("%d", d.stat.Attempts)) + "\n")
		b.WriteString(dimStyle.Render("  Accuracy:  ") + valStyle.Render(fmt.Sprintf("%.0f%%", acc)) + "\n")
	} else {
		b.WriteString(dimStyle.Italic(true).Render("  No rounds played here yet") + "\n")
	}
	b.WriteString("\n")

	// Strategies taught on this rung.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Strategies"))
	b.WriteString("\n")
	for _, st := range lvl.Strategies() {
		b.WriteString(valStyle.Render(fmt.Sprintf("  %-11s", st.DisplayName())))
		b.WriteString(dimStyle.Render("  " + strategyTip(st)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Problem shapes.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Problem shapes"))
	b.WriteString("\n")
	for _, p := range lvl.Profiles {
		shape := fmt.Sprintf("  %-11s  %d-%d %s %d-%d",
			p.Target.DisplayName(),
			p.Operand1.Min, p.Operand1.Max,
			p.Operation.Symbol(),
			p.Operand2.Min, p.Operand2.Max)
		if p.MaxAnswer > 0 {
			shape += fmt.Sprintf(", answers to %d", p.MaxAnswer)
		}
		b.WriteString(dimStyle.Render(shape))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}

// standing says where this rung sits relative to the learner.
func (d *LevelDetailScreen) standing() string {
	switch {
	case d.level.Number == d.current:
		return lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("★ You are here")
	case d.level.Number < d.current:
		return lipgloss.NewStyle().Foreground(theme.Success).Render("✔ Visited")
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("· Up ahead")
	}
}

// strategyTip is the one-line reminder of how a strategy works.
func strategyTip(s strategy.Strategy) string {
	switch s {
	case strategy.StrategyBasic:
		return "Count it straight, no splitting needed."
	case strategy.StrategyMakeTen:
		return "Split the smaller number to finish a ten first."
	case strategy.StrategyCrossing:
		return "Hop to the next ten, then go the rest of the way."
	default:
		return ""
	}
}
