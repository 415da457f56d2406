package catalog

import "fmt"

// Length selects how many questions the test administers.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// LengthConfig describes the selection rules for a test length.
type LengthConfig struct {
	Name             string
	QuestionsPerAxis int
	MaxPriority      int
	EstimatedMinutes int
}

var lengthConfigs = map[Length]LengthConfig{
	LengthShort:  {Name: "Quick Assessment", QuestionsPerAxis: 4, MaxPriority: 1, EstimatedMinutes: 5},
	LengthMedium: {Name: "Balanced Test", QuestionsPerAxis: 11, MaxPriority: 2, EstimatedMinutes: 12},
	LengthLong:   {Name: "Comprehensive Analysis", QuestionsPerAxis: 22, MaxPriority: 3, EstimatedMinutes: 25},
}

// AllLengths returns the lengths in ascending size order.
func AllLengths() []Length {
	return []Length{LengthShort, LengthMedium, LengthLong}
}

// Valid reports whether l is a known test length.
func (l Length) Valid() bool {
	_, ok := lengthConfigs[l]
	return ok
}

// Config returns the selection rules for l, or an error for an unknown length.
func (l Length) Config() (LengthConfig, error) {
	cfg, ok := lengthConfigs[l]
	if !ok {
		return LengthConfig{}, fmt.Errorf("unknown test length: %q", l)
	}
	return cfg, nil
}

// TotalQuestions returns the full question count for l (0 for unknown lengths).
func (l Length) TotalQuestions() int {
	return lengthConfigs[l].QuestionsPerAxis * len(AllAxes())
}
