package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bondten/internal/ui/theme"
)

// TextInput wraps bubbles/textinput for answer and bond-part entry.
// With NumericOnly set it swallows any printable key that is not a
// digit, so a child mashing letters never sees them appear.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	MaxDigits   int
	submitted   bool
	valid       bool
}

// NewTextInput creates a styled input. maxDigits caps the value length
// when > 0; answers in this tutor never need more than three digits.
func NewTextInput(placeholder string, numericOnly bool, maxDigits int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxDigits > 0 {
		ti.CharLimit = maxDigits
	}

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
		MaxDigits:   maxDigits,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && t.rejects(kmsg) {
		return t, nil
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// rejects reports whether a key should be dropped before it reaches
// the underlying model. Multi-rune names (enter, backspace, left) pass
// through so editing still works.
func (t TextInput) rejects(kmsg tea.KeyMsg) bool {
	if !t.NumericOnly {
		return false
	}
	key := kmsg.String()
	return len(key) == 1 && (key[0] < '0' || key[0] > '9')
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// View renders the input, with a verdict mark once submitted.
func (t TextInput) View() string {
	view := t.Model.View()
	if !t.submitted {
		return view
	}
	if t.valid {
		return view + " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return view + " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue returns the input value as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Submit marks the input as submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
