// Package insight maps 4-letter type codes to descriptive metadata.
// It only decorates a finished result for display; the core never needs
// it to compute one.
package insight

// TypeInsight is the descriptive profile for one personality type.
type TypeInsight struct {
	Code       string
	Title      string
	Tagline    string
	Overview   string
	Strengths  []string
	Challenges []string
	Careers    []string
}

// Lookup returns the insight for a type code, or ok=false for an
// unknown code.
func Lookup(code string) (TypeInsight, bool) {
	t, ok := types[code]
	return t, ok
}

// Codes returns all known type codes in a fixed order.
func Codes() []string {
	return []string{
		"ISTJ", "ISFJ", "INFJ", "INTJ",
		"ISTP", "ISFP", "INFP", "INTP",
		"ESTP", "ESFP", "ENFP", "ENTP",
		"ESTJ", "ESFJ", "ENFJ", "ENTJ",
	}
}
