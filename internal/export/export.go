// Package export writes completed results out of the terminal: JSON and
// plain-text files under the configured export directory, plus a
// clipboard copy of the text report.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/abhisek/mindprint/internal/insight"
	"github.com/abhisek/mindprint/internal/scoring"
	"github.com/abhisek/mindprint/internal/session"
)

// Format selects the on-disk representation.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat maps a user-supplied string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want json or text)", s)
	}
}

// Exporter writes result files into a single directory.
type Exporter struct {
	dir string
}

// NewExporter returns an exporter rooted at dir. The directory is
// created lazily on first write.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Dir returns the export directory.
func (e *Exporter) Dir() string { return e.dir }

// Export writes the session's result in the given format and returns
// the written path. The session must be completed.
func (e *Exporter) Export(s *session.Session, format Format) (string, error) {
	if s.Result == nil {
		return "", fmt.Errorf("session %s has no result to export", s.ID)
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	var (
		data []byte
		ext  string
		err  error
	)
	switch format {
	case FormatJSON:
		ext = "json"
		data, err = renderJSON(s)
	case FormatText:
		ext = "txt"
		data = []byte(RenderText(s))
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return "", err
	}

	path := filepath.Join(e.dir, fmt.Sprintf("mindprint_%s.%s", s.ID, ext))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// CopyToClipboard puts the text report on the system clipboard.
func CopyToClipboard(s *session.Session) error {
	if s.Result == nil {
		return fmt.Errorf("session %s has no result to copy", s.ID)
	}
	if err := clipboard.WriteAll(RenderText(s)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// jsonReport is the stable export schema; it deliberately flattens the
// session so consumers never depend on internal persistence layout.
type jsonReport struct {
	SessionID   string               `json:"session_id"`
	TestLength  string               `json:"test_length"`
	CompletedAt *time.Time           `json:"completed_at,omitempty"`
	Result      *scoring.Result      `json:"result"`
	Insight     *insight.TypeInsight `json:"insight,omitempty"`
}

func renderJSON(s *session.Session) ([]byte, error) {
	report := jsonReport{
		SessionID:   s.ID,
		TestLength:  string(s.Length),
		CompletedAt: s.CompletedAt,
		Result:      s.Result,
	}
	if t, ok := insight.Lookup(s.Result.TypeCode); ok {
		report.Insight = &t
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return append(data, '\n'), nil
}

// RenderText builds the plain-text report shared by the text export and
// the clipboard copy.
func RenderText(s *session.Session) string {
	r := s.Result
	var b strings.Builder

	fmt.Fprintf(&b, "Mindprint Personality Assessment\n")
	fmt.Fprintf(&b, "================================\n\n")
	fmt.Fprintf(&b, "Session:    %s\n", s.ID)
	if s.CompletedAt != nil {
		fmt.Fprintf(&b, "Completed:  %s\n", s.CompletedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(&b, "Type:       %s", r.TypeCode)
	if t, ok := insight.Lookup(r.TypeCode); ok {
		fmt.Fprintf(&b, " — %s", t.Title)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Confidence: %.1f%% (%s)\n", r.Confidence, r.ConfidenceLevel)
	if r.SecondaryType != "" {
		fmt.Fprintf(&b, "Also close: %s\n", r.SecondaryType)
	}
	if r.Flagged {
		fmt.Fprintf(&b, "\nNote: response pattern flagged (%s); treat this result with caution.\n", r.FlagReason)
	}

	b.WriteString("\nDimensions\n----------\n")
	for _, d := range r.Dimensions {
		fmt.Fprintf(&b, "%-22s %s %s %s  %s %.1f%%",
			d.Axis.Name(),
			d.Axis.Left(), bar(d.RightScore), d.Axis.Right(),
			d.Preference, d.Strength)
		if d.Borderline {
			b.WriteString("  (borderline)")
		}
		b.WriteString("\n")
	}

	if t, ok := insight.Lookup(r.TypeCode); ok {
		fmt.Fprintf(&b, "\n%s\n", t.Overview)
		b.WriteString("\nStrengths\n")
		for _, line := range t.Strengths {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
		b.WriteString("\nGrowth areas\n")
		for _, c := range t.Challenges {
			fmt.Fprintf(&b, "  - %s\n", c)
		}
		b.WriteString("\nCommon career fits\n")
		for _, c := range t.Careers {
			fmt.Fprintf(&b, "  - %s\n", c)
		}
	}

	return b.String()
}

// bar renders a 20-cell gauge with the marker at the right-pole
// percentage.
func bar(rightPct float64) string {
	const width = 20
	pos := int(rightPct / 100 * float64(width-1))
	if pos < 0 {
		pos = 0
	}
	if pos >= width {
		pos = width - 1
	}
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = '·'
	}
	cells[pos] = '●'
	return "[" + string(cells) + "]"
}
