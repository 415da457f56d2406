// Package home is the landing screen: start a test, resume one, or
// leave.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindprint/internal/export"
	"github.com/abhisek/mindprint/internal/flow"
	"github.com/abhisek/mindprint/internal/router"
	"github.com/abhisek/mindprint/internal/screen"
	"github.com/abhisek/mindprint/internal/screens/length"
	"github.com/abhisek/mindprint/internal/screens/resume"
	"github.com/abhisek/mindprint/internal/session"
	"github.com/abhisek/mindprint/internal/ui/components"
	"github.com/abhisek/mindprint/internal/ui/layout"
	"github.com/abhisek/mindprint/internal/ui/theme"
)

const banner = `
 ┌┬┐┬┌┐┌┌┬┐┌─┐┬─┐┬┌┐┌┌┬┐
 │││││││ ││├─┘├┬┘││││ │
 ┴ ┴┴┘└┘─┴┘┴  ┴└─┴┘└┘ ┴
`

// HomeScreen is the main landing screen of the application.
type HomeScreen struct {
	menu      components.Menu
	resumable int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the landing screen. Each "take test" entry builds a fresh
// controller so an abandoned run never blocks a new one.
func New(mgr *session.Manager, exporter *export.Exporter) *HomeScreen {
	resumable := len(mgr.ListResumable())

	items := []components.MenuItem{
		{Label: "TAKE THE TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				ctrl := flow.NewController(mgr)
				return router.PushScreenMsg{Screen: length.New(ctrl, exporter)}
			}
		}},
		{
			Label:    "RESUME A SESSION",
			Disabled: resumable == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					ctrl := flow.NewController(mgr)
					return router.PushScreenMsg{Screen: resume.New(ctrl, mgr, exporter)}
				}
			},
		},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		resumable: resumable,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render(strings.TrimPrefix(banner, "\n")))
	sections = append(sections, theme.Subtitle.Render("A terminal personality assessment"))

	if h.resumable > 0 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Align(lipgloss.Center).
			Render(fmt.Sprintf("%d session(s) waiting to be resumed", h.resumable)))
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return layout.Center(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
