package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bondten/internal/ui/theme"
)

// BondInput collects the two parts of a number bond: a pair of small
// numeric inputs drawn as circles hanging off the number being split.
// Tab or the arrow keys move between the circles.
type BondInput struct {
	Left  TextInput
	Right TextInput

	// Focus is 0 for the left circle, 1 for the right.
	Focus int
}

// NewBondInput creates a bond input with the left circle focused.
func NewBondInput() BondInput {
	left := NewTextInput("?", true, 2)
	left.Model.Prompt = ""

	right := NewTextInput("?", true, 2)
	right.Model.Prompt = ""
	right.Blur()

	return BondInput{Left: left, Right: right}
}

// Init returns the initial command.
func (b BondInput) Init() tea.Cmd {
	return b.Left.Init()
}

// Update routes keys to the focused circle and handles focus movement.
func (b BondInput) Update(msg tea.Msg) (BondInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "shift+tab", "left", "right":
			return b.swapFocus(), nil
		}
	}

	var cmd tea.Cmd
	if b.Focus == 0 {
		b.Left, cmd = b.Left.Update(msg)
	} else {
		b.Right, cmd = b.Right.Update(msg)
	}
	return b, cmd
}

func (b BondInput) swapFocus() BondInput {
	if b.Focus == 0 {
		b.Focus = 1
		b.Left.Blur()
		b.Right.Focus()
	} else {
		b.Focus = 0
		b.Right.Blur()
		b.Left.Focus()
	}
	return b
}

// View renders the bond arms and the two part circles.
func (b BondInput) View() string {
	arms := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("╱     ╲")

	circles := lipgloss.JoinHorizontal(lipgloss.Top,
		bondCircle(b.Left, b.Focus == 0),
		"   ",
		bondCircle(b.Right, b.Focus == 1),
	)

	return lipgloss.JoinVertical(lipgloss.Center, arms, circles)
}

func bondCircle(t TextInput, focused bool) string {
	border := theme.Border
	if focused {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(5).
		Align(lipgloss.Center).
		Render(t.View())
}

// Complete reports whether both circles hold a value.
func (b BondInput) Complete() bool {
	return b.Left.Value() != "" && b.Right.Value() != ""
}

// Values parses both circles.
func (b BondInput) Values() (int, int, error) {
	left, err := b.Left.NumericValue()
	if err != nil {
		return 0, 0, fmt.Errorf("left part: %w", err)
	}
	right, err := b.Right.NumericValue()
	if err != nil {
		return 0, 0, fmt.Errorf("right part: %w", err)
	}
	return left, right, nil
}

// Clear wipes both circles and refocuses the left one for another try.
func (b *BondInput) Clear() {
	b.Left.Model.SetValue("")
	b.Right.Model.SetValue("")
	if b.Focus == 1 {
		b.Right.Blur()
		b.Left.Focus()
		b.Focus = 0
	}
}
