package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindprint/internal/catalog"
	"github.com/abhisek/mindprint/internal/ui/theme"
)

// LikertScale is a 1-5 agreement selector. A number key jumps straight
// to that value; left/right adjust; enter submits.
type LikertScale struct {
	Options   []catalog.Option
	Selected  int // index into Options
	Submitted bool
}

// NewLikertScale creates a scale over the given options, starting at
// the neutral midpoint.
func NewLikertScale(options []catalog.Option) LikertScale {
	return LikertScale{
		Options:  options,
		Selected: len(options) / 2,
	}
}

// Preselect moves the cursor to the option with the given value, used
// when revisiting an already answered question.
func (l *LikertScale) Preselect(value int) {
	for i, opt := range l.Options {
		if opt.Value == value {
			l.Selected = i
			return
		}
	}
}

// Value returns the currently selected answer value.
func (l LikertScale) Value() int {
	return l.Options[l.Selected].Value
}

// Init returns nil.
func (l LikertScale) Init() tea.Cmd {
	return nil
}

// Update handles keyboard input. Submission is signalled through the
// Submitted flag; the parent screen reads Value and resets the scale.
func (l LikertScale) Update(msg tea.Msg) (LikertScale, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if l.Selected > 0 {
			l.Selected--
		}
	case "right", "l":
		if l.Selected < len(l.Options)-1 {
			l.Selected++
		}
	case "enter":
		l.Submitted = true
	case "1", "2", "3", "4", "5":
		for i, opt := range l.Options {
			if fmt.Sprintf("%d", opt.Value) == key {
				l.Selected = i
				l.Submitted = true
				break
			}
		}
	}

	return l, nil
}

// View renders the scale as a row of numbered stops with the selected
// option's label underneath.
func (l LikertScale) View() string {
	var row string
	for i, opt := range l.Options {
		cell := fmt.Sprintf(" %d ", opt.Value)
		if i == l.Selected {
			row += lipgloss.NewStyle().
				Background(theme.Primary).
				Foreground(theme.BgDark).
				Bold(true).
				Render(cell)
		} else {
			row += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render(cell)
		}
		if i < len(l.Options)-1 {
			row += lipgloss.NewStyle().Foreground(theme.Border).Render("──")
		}
	}

	ends := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Disagree") +
		"                      " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Agree")

	label := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(l.Options[l.Selected].Label)

	return row + "\n" + ends + "\n\n" + label
}
