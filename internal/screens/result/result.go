// Package result presents the completed profile: type code, dimension
// gauges, confidence, and export actions. A flagged result must be
// acknowledged before export unlocks.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindprint/internal/export"
	"github.com/abhisek/mindprint/internal/insight"
	"github.com/abhisek/mindprint/internal/scoring"
	"github.com/abhisek/mindprint/internal/screen"
	"github.com/abhisek/mindprint/internal/session"
	"github.com/abhisek/mindprint/internal/ui/components"
	"github.com/abhisek/mindprint/internal/ui/layout"
	"github.com/abhisek/mindprint/internal/ui/theme"
)

// ResultScreen shows a finished assessment.
type ResultScreen struct {
	sess     *session.Session
	result   *scoring.Result
	exporter *export.Exporter

	acknowledged bool
	status       string
	statusErr    bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates the result screen.
func New(sess *session.Session, result *scoring.Result, exporter *export.Exporter) *ResultScreen {
	return &ResultScreen{
		sess:         sess,
		result:       result,
		exporter:     exporter,
		acknowledged: !result.Flagged,
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "a":
		s.acknowledged = true
	case "j":
		s.export(export.FormatJSON)
	case "t":
		s.export(export.FormatText)
	case "c":
		if !s.acknowledged {
			s.setStatus("acknowledge the validity warning first (press A)", true)
			return s, nil
		}
		if err := export.CopyToClipboard(s.sess); err != nil {
			s.setStatus(err.Error(), true)
		} else {
			s.setStatus("copied to clipboard", false)
		}
	case "q":
		return s, tea.Quit
	}

	return s, nil
}

func (s *ResultScreen) export(format export.Format) {
	if !s.acknowledged {
		s.setStatus("acknowledge the validity warning first (press A)", true)
		return
	}
	path, err := s.exporter.Export(s.sess, format)
	if err != nil {
		s.setStatus(err.Error(), true)
		return
	}
	s.setStatus("saved "+path, false)
}

func (s *ResultScreen) setStatus(msg string, isErr bool) {
	s.status = msg
	s.statusErr = isErr
}

func (s *ResultScreen) View(width, height int) string {
	r := s.result
	cw := min(width-8, 64)

	var sections []string

	code := theme.TypeCode.Render(spaced(r.TypeCode))
	header := code
	if t, ok := insight.Lookup(r.TypeCode); ok {
		header += "\n" + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(t.Title) +
			"\n" + theme.Hint.Render(t.Tagline)
	}
	sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(header))

	conf := fmt.Sprintf("Confidence: %.1f%% (%s)", r.Confidence, r.ConfidenceLevel)
	if r.SecondaryType != "" {
		conf += "   Also close: " + r.SecondaryType
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Align(lipgloss.Center).Render(conf))

	var dims []string
	for _, d := range r.Dimensions {
		gauge := components.DimensionGauge{
			LeftLetter:  d.Axis.Left(),
			RightLetter: d.Axis.Right(),
			RightPct:    d.RightScore,
			Borderline:  d.Borderline,
			Width:       cw - 18,
		}
		line := fmt.Sprintf("%-20s %s  %s %4.1f%%",
			d.Axis.Name(), gauge.View(), d.Preference, d.Strength)
		if d.Borderline {
			line += theme.Caution.Render("  borderline")
		}
		dims = append(dims, line)
	}
	sections = append(sections, strings.Join(dims, "\n"))

	if r.Flagged && !s.acknowledged {
		warn := theme.Caution.Render("⚠ Response pattern flagged: "+r.FlagReason) + "\n" +
			theme.Hint.Render("This result may not reflect genuine preferences. Press A to acknowledge.")
		sections = append(sections, warn)
	} else if t, ok := insight.Lookup(r.TypeCode); ok {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(cw).
			Render(t.Overview))
	}

	if s.status != "" {
		style := theme.Positive
		if s.statusErr {
			style = theme.Negative
		}
		sections = append(sections, style.Render(s.status))
	}

	content := strings.Join(sections, "\n\n")
	return layout.Center(theme.Card.Render(content), width, height)
}

func (s *ResultScreen) Title() string {
	return "Your Profile"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	if s.result.Flagged && !s.acknowledged {
		return []layout.KeyHint{
			{Key: "A", Description: "Acknowledge"},
			{Key: "Q", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "J", Description: "Export JSON"},
		{Key: "T", Description: "Export Text"},
		{Key: "C", Description: "Copy"},
		{Key: "Q", Description: "Quit"},
	}
}

// spaced letters read better at banner size.
func spaced(code string) string {
	return strings.Join(strings.Split(code, ""), " ")
}
