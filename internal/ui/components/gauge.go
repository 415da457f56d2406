package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindprint/internal/ui/theme"
)

// DimensionGauge renders one axis as a two-pole gauge with a marker at
// the right-pole percentage, e.g.  I ────────●──── E.
type DimensionGauge struct {
	LeftLetter  string
	RightLetter string
	RightPct    float64 // 0-100
	Borderline  bool
	Width       int
}

// View renders the gauge.
func (g DimensionGauge) View() string {
	barWidth := g.Width - 4 // letters and spacing
	if barWidth < 10 {
		barWidth = 10
	}

	pos := int(g.RightPct / 100 * float64(barWidth-1))
	if pos < 0 {
		pos = 0
	}
	if pos >= barWidth {
		pos = barWidth - 1
	}

	track := strings.Repeat("─", pos) + "●" + strings.Repeat("─", barWidth-pos-1)

	markerStyle := theme.Positive
	if g.Borderline {
		markerStyle = theme.Caution
	}

	left := lipgloss.NewStyle().Foreground(theme.Text).Bold(g.RightPct < 50).Render(g.LeftLetter)
	right := lipgloss.NewStyle().Foreground(theme.Text).Bold(g.RightPct > 50).Render(g.RightLetter)

	return fmt.Sprintf("%s %s %s", left, markerStyle.Render(track), right)
}
