package scoring

import (
	"math"

	"github.com/abhisek/mindprint/internal/catalog"
)

// ConfidenceLevel is a coarse banding of a result's mean strength.
type ConfidenceLevel string

const (
	ConfidenceStrong   ConfidenceLevel = "Strong"   // >= 80
	ConfidenceModerate ConfidenceLevel = "Moderate" // 60-79
	ConfidenceLow      ConfidenceLevel = "Low"      // < 60
)

// Result is the completed assessment outcome. It is attached to a
// session exactly once, on completion, and immutable thereafter.
type Result struct {
	TypeCode        string            `json:"type"`
	Confidence      float64           `json:"confidence"`
	ConfidenceLevel ConfidenceLevel   `json:"confidence_level"`
	Dimensions      [4]DimensionScore `json:"dimensions"`
	SecondaryType   string            `json:"secondary_type,omitempty"`
	Flagged         bool              `json:"flagged,omitempty"`
	FlagReason      string            `json:"flag_reason,omitempty"`
}

// DetermineType computes all four dimension scores in fixed axis order
// (EI, SN, TF, JP), concatenates the preference letters into the type
// code, and derives confidence from the mean strength. When one or more
// axes are borderline, a secondary type is suggested by flipping the
// single most borderline axis (ties break toward the earliest axis).
func (e *Engine) DetermineType() Result {
	var r Result
	total := 0.0

	mostBorderline := -1
	bestDist := math.Inf(1)

	for i, axis := range catalog.AllAxes() {
		ds := e.DimensionScore(axis)
		r.Dimensions[i] = ds
		r.TypeCode += ds.Preference
		total += ds.Strength

		if ds.Borderline {
			dist := math.Abs(ds.RightScore - 50)
			if dist < bestDist {
				bestDist = dist
				mostBorderline = i
			}
		}
	}

	r.Confidence = total / 4
	switch {
	case r.Confidence >= 80:
		r.ConfidenceLevel = ConfidenceStrong
	case r.Confidence >= 60:
		r.ConfidenceLevel = ConfidenceModerate
	default:
		r.ConfidenceLevel = ConfidenceLow
	}

	if mostBorderline >= 0 {
		r.SecondaryType = flipAxis(r, mostBorderline)
	}

	return r
}

// flipAxis returns the type code with the letter at index i flipped to
// the opposite pole.
func flipAxis(r Result, i int) string {
	code := []byte(r.TypeCode)
	axis := r.Dimensions[i].Axis
	if r.Dimensions[i].Preference == axis.Right() {
		code[i] = axis.Left()[0]
	} else {
		code[i] = axis.Right()[0]
	}
	return string(code)
}
