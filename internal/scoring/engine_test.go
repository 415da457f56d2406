package scoring

import (
	"fmt"
	"testing"

	"github.com/abhisek/mindprint/internal/catalog"
)

func addAll(e *Engine, axis catalog.Axis, prefix string, values ...int) {
	for i, v := range values {
		e.AddResponse(fmt.Sprintf("%s%02d", prefix, i+1), axis, v, false)
	}
}

func TestDimensionScoreStrongRight(t *testing.T) {
	e := NewEngine()
	addAll(e, catalog.AxisEI, "ei", 5, 5, 4, 5)

	ds := e.DimensionScore(catalog.AxisEI)
	if ds.Preference != "E" {
		t.Errorf("expected preference E, got %s", ds.Preference)
	}
	if ds.Strength != 93.75 {
		t.Errorf("expected strength 93.75, got %v", ds.Strength)
	}
	if ds.Borderline {
		t.Error("93.75%% should not be borderline")
	}
	if ds.ResponseCount != 4 {
		t.Errorf("expected 4 responses, got %d", ds.ResponseCount)
	}
}

func TestDimensionScoreStrongLeft(t *testing.T) {
	e := NewEngine()
	addAll(e, catalog.AxisTF, "tf", 1, 1, 1, 1)

	ds := e.DimensionScore(catalog.AxisTF)
	if ds.Preference != "F" {
		t.Errorf("expected preference F, got %s", ds.Preference)
	}
	if ds.Strength != 100 {
		t.Errorf("expected strength 100, got %v", ds.Strength)
	}
	if ds.RightScore != 0 {
		t.Errorf("expected right score 0, got %v", ds.RightScore)
	}
}

func TestDimensionScoreNeutralTie(t *testing.T) {
	e := NewEngine()
	addAll(e, catalog.AxisEI, "ei", 3, 3, 3, 3)

	ds := e.DimensionScore(catalog.AxisEI)
	if ds.RightScore != 50 {
		t.Fatalf("expected 50/50 split, got right %v", ds.RightScore)
	}
	if !ds.Borderline {
		t.Error("50%% must be borderline")
	}
	// Ties resolve to the left letter.
	if ds.Preference != "I" {
		t.Errorf("expected tie to resolve to I, got %s", ds.Preference)
	}
}

func TestDimensionScoreBorderlineBand(t *testing.T) {
	// 22 answers: sum 67 puts the right side at 51.14%, inside [48,52]
	// but above 50, so the right letter wins while staying borderline.
	e := NewEngine()
	values := make([]int, 22)
	for i := range values {
		values[i] = 3
	}
	values[0] = 4 // sum 67
	addAll(e, catalog.AxisJP, "jp", values...)

	ds := e.DimensionScore(catalog.AxisJP)
	if !ds.Borderline {
		t.Fatalf("expected borderline at %v%%", ds.RightScore)
	}
	if ds.Preference != "J" {
		t.Errorf("expected J above 50%%, got %s", ds.Preference)
	}
}

func TestReverseCoding(t *testing.T) {
	e := NewEngine()
	e.AddResponse("ei01", catalog.AxisEI, 2, true)  // effective 4
	e.AddResponse("ei02", catalog.AxisEI, 5, false) // effective 5

	ds := e.DimensionScore(catalog.AxisEI)
	// sum 9, n 2: (9-2)/8 = 87.5
	if ds.RightScore != 87.5 {
		t.Errorf("expected right score 87.5, got %v", ds.RightScore)
	}
}

func TestReAnswerReplaces(t *testing.T) {
	e := NewEngine()
	e.AddResponse("ei01", catalog.AxisEI, 1, false)
	e.AddResponse("ei01", catalog.AxisEI, 5, false)

	if e.ResponseCount() != 1 {
		t.Fatalf("expected 1 response after re-answer, got %d", e.ResponseCount())
	}
	ds := e.DimensionScore(catalog.AxisEI)
	if ds.RightScore != 100 {
		t.Errorf("expected the replacement value to count, got right %v", ds.RightScore)
	}
}

func TestOrderIndependence(t *testing.T) {
	forward := NewEngine()
	addAll(forward, catalog.AxisSN, "sn", 1, 2, 3, 4, 5)

	backward := NewEngine()
	backward.AddResponse("sn05", catalog.AxisSN, 5, false)
	backward.AddResponse("sn04", catalog.AxisSN, 4, false)
	backward.AddResponse("sn03", catalog.AxisSN, 3, false)
	backward.AddResponse("sn02", catalog.AxisSN, 2, false)
	backward.AddResponse("sn01", catalog.AxisSN, 1, false)

	if forward.DimensionScore(catalog.AxisSN) != backward.DimensionScore(catalog.AxisSN) {
		t.Error("scores depend on accumulation order")
	}
}

func TestEmptyAxis(t *testing.T) {
	e := NewEngine()
	ds := e.DimensionScore(catalog.AxisTF)
	if ds.Preference != "F" || !ds.Borderline || ds.RightScore != 50 {
		t.Errorf("empty axis should be a borderline 50/50 left default, got %+v", ds)
	}
}

func TestReset(t *testing.T) {
	e := NewEngine()
	addAll(e, catalog.AxisEI, "ei", 5, 5)
	e.Reset()
	if e.ResponseCount() != 0 {
		t.Errorf("expected empty engine after reset, got %d responses", e.ResponseCount())
	}
}
