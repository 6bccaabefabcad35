package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bondten/internal/ui/theme"
)

// MultiChoice is the answer selector for basic problems. A round allows
// several guesses, so wrong picks are struck rather than ending the
// question; Reveal is called once the round resolves.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int

	// Struck marks options already guessed wrong this round.
	Struck map[int]bool

	// Revealed is set when the round resolves; ChosenIndex is the last
	// submitted option, -1 before any submission.
	Revealed    bool
	ChosenIndex int
}

// NewMultiChoice creates a multiple-choice component for one problem.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Struck:       make(map[int]bool),
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement. Submission is the caller's call, since
// it owns the round state.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	}

	return m, nil
}

// Choose records a submission of option i.
func (m *MultiChoice) Choose(i int) {
	if i < 0 || i >= len(m.Options) {
		return
	}
	m.ChosenIndex = i
	m.Selected = i
}

// Strike marks option i as guessed wrong so the learner picks again.
func (m *MultiChoice) Strike(i int) {
	if i < 0 || i >= len(m.Options) {
		return
	}
	m.Struck[i] = true
}

// Reveal freezes the component and colors the resolution.
func (m *MultiChoice) Reveal() {
	m.Revealed = true
}

// View renders the option list.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case m.Revealed && i == m.CorrectIndex:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case m.Revealed && i == m.ChosenIndex:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case m.Struck[i]:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true).Render(line) + "\n"
		case i == m.Selected && !m.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// IsCorrect reports whether the revealed choice was the right one.
func (m MultiChoice) IsCorrect() bool {
	return m.Revealed && m.ChosenIndex == m.CorrectIndex
}
