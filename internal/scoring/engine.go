// Package scoring accumulates validated responses per axis and derives
// the four-axis preference profile and the overall typed result. It is
// pure: the same responses always produce identical output, regardless
// of persistence or accumulation order.
package scoring

import (
	"github.com/abhisek/mindprint/internal/catalog"
)

// Borderline bounds: a dimension whose right-side percentage falls in
// [48,52] has no clear preference.
const (
	BorderlineLow  = 48.0
	BorderlineHigh = 52.0
)

// DimensionScore is the derived score for one axis.
type DimensionScore struct {
	Axis          catalog.Axis `json:"axis"`
	Preference    string       `json:"preference"`     // winning letter, e.g. "E"
	Strength      float64      `json:"strength"`       // preferred side's percentage, 0-100
	RightScore    float64      `json:"right_score"`    // right pole (E/N/T/J) percentage
	LeftScore     float64      `json:"left_score"`     // left pole (I/S/F/P) percentage
	Borderline    bool         `json:"borderline"`
	ResponseCount int          `json:"response_count"`
}

// scored is one accumulated response, keyed by question id so that a
// back-navigation re-answer replaces rather than duplicates.
type scored struct {
	axis      catalog.Axis
	effective int
}

// Engine accumulates effective response values per axis.
type Engine struct {
	responses map[string]scored
}

// NewEngine returns an empty scoring engine.
func NewEngine() *Engine {
	return &Engine{responses: make(map[string]scored)}
}

// Reset clears all accumulated responses.
func (e *Engine) Reset() {
	e.responses = make(map[string]scored)
}

// AddResponse records a validated response. Reverse-coded questions are
// inverted with 6-value, which keeps the 1-5 scale symmetric around 3.
// Adding the same question id again replaces the earlier contribution.
func (e *Engine) AddResponse(questionID string, axis catalog.Axis, value int, reverseCoded bool) {
	effective := value
	if reverseCoded {
		effective = 6 - value
	}
	e.responses[questionID] = scored{axis: axis, effective: effective}
}

// ResponseCount returns the number of distinct questions scored so far.
func (e *Engine) ResponseCount() int {
	return len(e.responses)
}

// DimensionScore derives the score for one axis from the accumulated
// responses. The integer sum is normalized min-max onto 0-100 so that
// an all-neutral axis lands exactly at 50%. Right percentages above 52
// take the right letter, below 48 the left letter; the borderline band
// goes to the numerically closer side, with exact ties resolved to the
// left letter for determinism.
func (e *Engine) DimensionScore(axis catalog.Axis) DimensionScore {
	sum, n := 0, 0
	for _, r := range e.responses {
		if r.axis == axis {
			sum += r.effective
			n++
		}
	}

	if n == 0 {
		return DimensionScore{
			Axis:       axis,
			Preference: axis.Left(),
			Strength:   50,
			RightScore: 50,
			LeftScore:  50,
			Borderline: true,
		}
	}

	rightPct := float64(sum-n) / float64(4*n) * 100
	leftPct := 100 - rightPct

	ds := DimensionScore{
		Axis:          axis,
		RightScore:    rightPct,
		LeftScore:     leftPct,
		ResponseCount: n,
		Borderline:    rightPct >= BorderlineLow && rightPct <= BorderlineHigh,
	}

	switch {
	case rightPct > BorderlineHigh:
		ds.Preference = axis.Right()
		ds.Strength = rightPct
	case rightPct < BorderlineLow:
		ds.Preference = axis.Left()
		ds.Strength = leftPct
	case rightPct > 50:
		ds.Preference = axis.Right()
		ds.Strength = rightPct
	default:
		// Ties at exactly 50 resolve left.
		ds.Preference = axis.Left()
		ds.Strength = leftPct
	}

	return ds
}
