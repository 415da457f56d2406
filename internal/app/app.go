package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindprint/internal/catalog"
	"github.com/abhisek/mindprint/internal/export"
	"github.com/abhisek/mindprint/internal/flow"
	"github.com/abhisek/mindprint/internal/router"
	"github.com/abhisek/mindprint/internal/screen"
	"github.com/abhisek/mindprint/internal/screens/home"
	"github.com/abhisek/mindprint/internal/screens/question"
	"github.com/abhisek/mindprint/internal/session"
	"github.com/abhisek/mindprint/internal/ui/layout"
)

// Options carries the application dependencies and an optional direct
// entry point that skips the home menu.
type Options struct {
	Manager  *session.Manager
	Exporter *export.Exporter

	// StartLength, when set, starts a test of that length immediately.
	StartLength *catalog.Length

	// ResumeID, when set, resumes that session immediately.
	ResumeID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel builds the screen stack from the options.
func newAppModel(opts Options) (AppModel, error) {
	r := router.New(home.New(opts.Manager, opts.Exporter))

	switch {
	case opts.StartLength != nil:
		ctrl := flow.NewController(opts.Manager)
		if _, err := ctrl.Initialize(*opts.StartLength); err != nil {
			return AppModel{}, fmt.Errorf("start test: %w", err)
		}
		r.Push(question.New(ctrl, opts.Exporter))

	case opts.ResumeID != "":
		ctrl := flow.NewController(opts.Manager)
		if err := ctrl.Resume(opts.ResumeID); err != nil {
			return AppModel{}, fmt.Errorf("resume session: %w", err)
		}
		next, err := question.ScreenFor(ctrl, opts.Exporter)
		if err != nil {
			return AppModel{}, fmt.Errorf("resume session: %w", err)
		}
		r.Push(next)
	}

	return AppModel{router: r}, nil
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if in, ok := m.router.Active().(screen.Interrupter); ok {
				in.Interrupt()
			}
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				if in, ok := m.router.Active().(screen.Interrupter); ok {
					in.Interrupt()
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	answered, total := 0, 0
	if p, ok := active.(screen.ProgressProvider); ok {
		answered, total = p.Progress()
	}

	header := layout.RenderHeader(title, answered, total, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
