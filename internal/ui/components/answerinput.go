package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindprint/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for free-form answer entry. It
// accepts anything the sanitizer can handle ("4", "3.5", "2) Disagree")
// and leaves interpretation to the submit path.
type AnswerInput struct {
	Model     textinput.Model
	Submitted bool
}

// NewAnswerInput creates a focused answer input.
func NewAnswerInput() AnswerInput {
	ti := textinput.New()
	ti.Placeholder = "type a value from 1 to 5"
	ti.CharLimit = 24
	ti.Focus()
	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages. Enter sets Submitted; the parent reads
// Value and calls Reset.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		a.Submitted = true
		return a, nil
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input with a prompt hint.
func (a AnswerInput) View() string {
	return a.Model.View() + "\n" + theme.Hint.Render("free entry — decimals round, out-of-range values clamp")
}

// Value returns the raw typed text.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Reset clears the input for the next question.
func (a *AnswerInput) Reset() {
	a.Submitted = false
	a.Model.SetValue("")
}
