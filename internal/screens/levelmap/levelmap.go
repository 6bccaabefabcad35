package levelmap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bondten/internal/levels"
	"github.com/abhisek/bondten/internal/router"
	"github.com/abhisek/bondten/internal/screen"
	"github.com/abhisek/bondten/internal/store"
	"github.com/abhisek/bondten/internal/ui/components"
	"github.com/abhisek/bondten/internal/ui/layout"
	"github.com/abhisek/bondten/internal/ui/theme"
)

// rowWidth keeps every ladder row the same width so the centered
// column lines up.
const rowWidth = 54

type levelStatsMsg struct {
	Stats map[int]store.LevelStat
	Err   error
}

// LevelMapScreen displays the four-rung level ladder with the
// learner's lifetime accuracy on each rung.
type LevelMapScreen struct {
	eventRepo store.EventRepo
	current   int // the level the learner practices at today
	cursor    int // index into levels.Catalog()
	stats     map[int]store.LevelStat
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*LevelMapScreen)(nil)
var _ screen.KeyHintProvider = (*LevelMapScreen)(nil)

// New creates a LevelMapScreen. current is the learner's present level
// and starts out selected.
func New(eventRepo store.EventRepo, current int) *LevelMapScreen {
	current = levels.Clamp(current)
	return &LevelMapScreen{
		eventRepo: eventRepo,
		current:   current,
		cursor:    current - levels.MinLevel,
	}
}

func (s *LevelMapScreen) Init() tea.Cmd {
	return func() tea.Msg {
		stats, err := s.eventRepo.LevelStats(context.Background())
		return levelStatsMsg{Stats: stats, Err: err}
	}
}

func (s *LevelMapScreen) Title() string {
	return "Level Map"
}

func (s *LevelMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LevelMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case levelStatsMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			// The ladder renders top-down, so up climbs.
			if s.cursor < len(levels.Catalog())-1 {
				s.cursor++
			}
			return s, nil
		case "down", "j":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil
		case "enter":
			lvl := levels.Catalog()[s.cursor]
			detail := newLevelDetail(lvl, s.current, s.stats[lvl.Number])
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: detail} }
		}
	}
	return s, nil
}

func (s *LevelMapScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading level map...")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Top rung first.
	cat := levels.Catalog()
	for i := len(cat) - 1; i >= 0; i-- {
		lvl := cat[i]
		b.WriteString(s.renderLevelRow(lvl, i == s.cursor, width))
		b.WriteString("\n")
		if i > 0 {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Border).Render(
					fmt.Sprintf("%-*s", rowWidth, "  │"))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderLevelRow renders one rung: badge, name and tagline on the
// first line, accuracy on the second.
func (s *LevelMapScreen) renderLevelRow(lvl levels.Level, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	badge, badgeStyle := s.levelBadge(lvl.Number)

	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if lvl.Number == s.current {
		nameStyle = nameStyle.Bold(true)
	}
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	name := fmt.Sprintf("Level %d · %s", lvl.Number, lvl.Name)
	head := fmt.Sprintf("%s%s %s", cursor, badgeStyle.Render(badge),
		nameStyle.Render(fmt.Sprintf("%-24s", name)))
	head += lipgloss.NewStyle().Foreground(theme.TextDim).Render(lvl.Tagline)

	pad := rowWidth - lipgloss.Width(head)
	if pad > 0 {
		head += strings.Repeat(" ", pad)
	}

	statsLine := fmt.Sprintf("%-*s", rowWidth, "      "+s.renderLevelStats(lvl.Number))

	first := lipgloss.PlaceHorizontal(width, lipgloss.Center, head)
	second := lipgloss.PlaceHorizontal(width, lipgloss.Center, statsLine)
	return first + "\n" + second
}

// levelBadge picks the rung icon for a level relative to where the
// learner stands.
func (s *LevelMapScreen) levelBadge(n int) (string, lipgloss.Style) {
	switch {
	case n == s.current:
		return "★", lipgloss.NewStyle().Foreground(theme.ArcadeYellow)
	case n < s.current:
		return "✔", lipgloss.NewStyle().Foreground(theme.Success)
	default:
		return "·", lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}

// renderLevelStats renders the lifetime accuracy bar for a level, or a
// placeholder for rungs the learner has never practiced.
func (s *LevelMapScreen) renderLevelStats(n int) string {
	st, ok := s.stats[n]
	if !ok || st.Attempts == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("not visited yet")
	}

	pct := float64(st.Correct) / float64(st.Attempts)
	bar := components.NewProgressBar("", pct, true, 26)

	rounds := fmt.Sprintf("%d round", st.Attempts)
	if st.Attempts != 1 {
		rounds += "s"
	}
	return bar.View() + lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+rounds)
}
