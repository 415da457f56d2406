// Package length lets the user choose a test length before starting.
package length

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindprint/internal/catalog"
	"github.com/abhisek/mindprint/internal/export"
	"github.com/abhisek/mindprint/internal/flow"
	"github.com/abhisek/mindprint/internal/router"
	"github.com/abhisek/mindprint/internal/screen"
	"github.com/abhisek/mindprint/internal/screens/question"
	"github.com/abhisek/mindprint/internal/ui/components"
	"github.com/abhisek/mindprint/internal/ui/layout"
	"github.com/abhisek/mindprint/internal/ui/theme"
)

// LengthScreen is the test-length chooser.
type LengthScreen struct {
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*LengthScreen)(nil)

type startFailedMsg struct{ err error }

// New creates the length chooser. Selecting a length initializes the
// controller and hands over to the question screen.
func New(ctrl *flow.Controller, exporter *export.Exporter) *LengthScreen {
	items := make([]components.MenuItem, 0, len(catalog.AllLengths())+1)
	for _, l := range catalog.AllLengths() {
		l := l
		cfg, _ := l.Config()
		items = append(items, components.MenuItem{
			Label: cfg.Name,
			Description: fmt.Sprintf("%d questions · ~%d min",
				l.TotalQuestions(), cfg.EstimatedMinutes),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					if _, err := ctrl.Initialize(l); err != nil {
						return startFailedMsg{err: err}
					}
					return router.ReplaceScreenMsg{Screen: question.New(ctrl, exporter)}
				}
			},
		})
	}

	return &LengthScreen{menu: components.NewMenu(items)}
}

func (s *LengthScreen) Init() tea.Cmd {
	return nil
}

func (s *LengthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if failed, ok := msg.(startFailedMsg); ok {
		s.errMsg = failed.err.Error()
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LengthScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Choose a test length"))
	sections = append(sections, s.menu.View())

	if s.errMsg != "" {
		sections = append(sections, theme.Negative.Render(s.errMsg))
	}

	content := strings.Join(sections, "\n\n")
	return layout.Center(theme.Card.Render(content), width, height)
}

func (s *LengthScreen) Title() string {
	return "New Test"
}
