// Package question renders the answer loop: one statement at a time
// with a 1-5 agreement scale, back-navigation, and live progress.
package question

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindprint/internal/export"
	"github.com/abhisek/mindprint/internal/flow"
	"github.com/abhisek/mindprint/internal/router"
	"github.com/abhisek/mindprint/internal/screen"
	"github.com/abhisek/mindprint/internal/screens/result"
	"github.com/abhisek/mindprint/internal/ui/components"
	"github.com/abhisek/mindprint/internal/ui/layout"
	"github.com/abhisek/mindprint/internal/ui/theme"
)

// QuestionScreen drives one test run against the flow controller.
type QuestionScreen struct {
	ctrl     *flow.Controller
	exporter *export.Exporter

	scale   components.LikertScale
	input   components.AnswerInput
	typed   bool
	errMsg  string
	warning string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.Interrupter = (*QuestionScreen)(nil)
var _ screen.ProgressProvider = (*QuestionScreen)(nil)

// ScreenFor routes a ready controller to the right screen: the answer
// loop while questions remain, or straight to results when every answer
// was already persisted and only finalization is left (a run cut short
// between the last answer's save and completion).
func ScreenFor(ctrl *flow.Controller, exporter *export.Exporter) (screen.Screen, error) {
	if ctrl.Complete() {
		res, err := ctrl.Results()
		if err != nil {
			return nil, err
		}
		return result.New(ctrl.Session(), res, exporter), nil
	}
	return New(ctrl, exporter), nil
}

// New creates the answer screen for an initialized or resumed
// controller.
func New(ctrl *flow.Controller, exporter *export.Exporter) *QuestionScreen {
	s := &QuestionScreen{
		ctrl:     ctrl,
		exporter: exporter,
		input:    components.NewAnswerInput(),
	}
	s.loadScale()
	if degraded, warning := ctrl.Degraded(); degraded {
		s.warning = warning
	}
	return s
}

// loadScale presents the current question and builds a fresh scale for
// it, preselecting the stored answer when the question was already
// answered once.
func (s *QuestionScreen) loadScale() {
	q, ok := s.ctrl.Present()
	if !ok {
		return
	}
	s.scale = components.NewLikertScale(q.Options)
	if sess := s.ctrl.Session(); sess != nil {
		for _, r := range sess.Responses {
			if r.QuestionID == q.ID {
				s.scale.Preselect(r.Value)
				break
			}
		}
	}
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			// Toggle between the scale and free-form entry.
			s.typed = !s.typed
			s.errMsg = ""
			s.input.Reset()
			return s, nil
		case "b":
			if !s.typed {
				if s.ctrl.Back() {
					s.errMsg = ""
					s.loadScale()
				}
				return s, nil
			}
		}
	}

	var cmd tea.Cmd
	if s.typed {
		s.input, cmd = s.input.Update(msg)
		if !s.input.Submitted {
			return s, cmd
		}
		raw := s.input.Value()
		s.input.Reset()
		return s.submit(raw, cmd)
	}

	s.scale, cmd = s.scale.Update(msg)
	if !s.scale.Submitted {
		return s, cmd
	}
	s.scale.Submitted = false
	return s.submit(strconv.Itoa(s.scale.Value()), cmd)
}

// submit routes a raw answer through the controller and advances or
// re-prompts.
func (s *QuestionScreen) submit(raw string, cmd tea.Cmd) (screen.Screen, tea.Cmd) {
	outcome, err := s.ctrl.Submit(raw)
	if err != nil {
		s.errMsg = err.Error()
		return s, cmd
	}
	if !outcome.Accepted {
		s.errMsg = outcome.Reason
		return s, cmd
	}
	s.errMsg = ""
	if outcome.Warning != "" {
		s.warning = outcome.Warning
	}

	if s.ctrl.Complete() {
		res, err := s.ctrl.Results()
		if err != nil {
			s.errMsg = err.Error()
			return s, cmd
		}
		next := result.New(s.ctrl.Session(), res, s.exporter)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}

	s.loadScale()
	return s, cmd
}

func (s *QuestionScreen) View(width, height int) string {
	q, ok := s.ctrl.CurrentQuestion()
	if !ok {
		return ""
	}
	current, total := s.ctrl.Progress()

	var sections []string

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", current+1, total),
		float64(current)/float64(total),
		true,
		min(width-8, 64),
	)
	sections = append(sections, progress.View())

	text := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(min(width-8, 64)).
		Render(q.Text)
	sections = append(sections, text)

	if s.typed {
		sections = append(sections, s.input.View())
	} else {
		sections = append(sections, s.scale.View())
	}

	if s.errMsg != "" {
		sections = append(sections, theme.Negative.Render(s.errMsg))
	}
	if s.warning != "" {
		sections = append(sections, theme.Caution.Render("⚠ "+s.warning))
	}

	content := strings.Join(sections, "\n\n")
	return layout.Center(theme.Card.Render(content), width, height)
}

func (s *QuestionScreen) Title() string {
	return "Assessment"
}

// Interrupt saves in-flight progress before the app quits.
func (s *QuestionScreen) Interrupt() {
	s.ctrl.Interrupt()
}

// Progress feeds the header's answered/total counter.
func (s *QuestionScreen) Progress() (answered, total int) {
	return s.ctrl.Progress()
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	if s.typed {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Tab", Description: "Scale"},
			{Key: "Ctrl+C", Description: "Save & Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-5", Description: "Answer"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "B", Description: "Previous"},
		{Key: "Tab", Description: "Type"},
		{Key: "Ctrl+C", Description: "Save & Quit"},
	}
}
