// Package resume lists resumable sessions and reopens one.
package resume

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindprint/internal/export"
	"github.com/abhisek/mindprint/internal/flow"
	"github.com/abhisek/mindprint/internal/router"
	"github.com/abhisek/mindprint/internal/screen"
	"github.com/abhisek/mindprint/internal/screens/question"
	"github.com/abhisek/mindprint/internal/session"
	"github.com/abhisek/mindprint/internal/ui/components"
	"github.com/abhisek/mindprint/internal/ui/layout"
	"github.com/abhisek/mindprint/internal/ui/theme"
)

// ResumeScreen is the resumable-session picker.
type ResumeScreen struct {
	menu   components.Menu
	empty  bool
	errMsg string
}

var _ screen.Screen = (*ResumeScreen)(nil)

type resumeFailedMsg struct{ err error }

// New lists resumable sessions for the picker. An expired or vanished
// session surfaces its error inline rather than crashing the picker.
func New(ctrl *flow.Controller, mgr *session.Manager, exporter *export.Exporter) *ResumeScreen {
	summaries := mgr.ListResumable()
	if len(summaries) == 0 {
		return &ResumeScreen{empty: true}
	}

	items := make([]components.MenuItem, 0, len(summaries))
	for _, sum := range summaries {
		sum := sum
		cfg, _ := sum.Length.Config()
		items = append(items, components.MenuItem{
			Label: sum.ID,
			Description: fmt.Sprintf("%s · %d/%d answered · %s",
				cfg.Name, sum.Answered, sum.Total,
				humanAge(time.Since(sum.LastUpdated))),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					if err := ctrl.Resume(sum.ID); err != nil {
						return resumeFailedMsg{err: err}
					}
					next, err := question.ScreenFor(ctrl, exporter)
					if err != nil {
						return resumeFailedMsg{err: err}
					}
					return router.ReplaceScreenMsg{Screen: next}
				}
			},
		})
	}

	return &ResumeScreen{menu: components.NewMenu(items)}
}

func (s *ResumeScreen) Init() tea.Cmd {
	return nil
}

func (s *ResumeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if failed, ok := msg.(resumeFailedMsg); ok {
		s.errMsg = failed.err.Error()
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResumeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Resume a session"))

	if s.empty {
		sections = append(sections, theme.Hint.Render("No resumable sessions found."))
	} else {
		sections = append(sections, s.menu.View())
	}

	if s.errMsg != "" {
		sections = append(sections, theme.Negative.Render(s.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return layout.Center(theme.Card.Render(content), width, height)
}

func (s *ResumeScreen) Title() string {
	return "Resume"
}

// humanAge renders a duration as a short "Nm ago" / "Nh ago" label.
func humanAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}
