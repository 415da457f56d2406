package catalog

import (
	"reflect"
	"testing"
)

func TestMain(m *testing.M) {
	if err := Load(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestLoadBankShape(t *testing.T) {
	all := All()
	if len(all) != 88 {
		t.Fatalf("expected 88 questions in bank, got %d", len(all))
	}

	for _, axis := range AllAxes() {
		qs := ByAxis(axis)
		if len(qs) != 22 {
			t.Errorf("axis %s: expected 22 questions, got %d", axis, len(qs))
		}
		for _, q := range qs {
			if q.Axis != axis {
				t.Errorf("question %s indexed under %s but has axis %s", q.ID, axis, q.Axis)
			}
			if len(q.Options) != 5 {
				t.Errorf("question %s: expected 5 options, got %d", q.ID, len(q.Options))
			}
		}
	}
}

func TestGet(t *testing.T) {
	q, err := Get("ei01")
	if err != nil {
		t.Fatalf("Get(ei01): %v", err)
	}
	if q.Axis != AxisEI {
		t.Errorf("expected axis EI, got %s", q.Axis)
	}

	if _, err := Get("nope"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestSelectCounts(t *testing.T) {
	tests := []struct {
		length Length
		want   int
	}{
		{LengthShort, 16},
		{LengthMedium, 44},
		{LengthLong, 88},
	}

	for _, tt := range tests {
		t.Run(string(tt.length), func(t *testing.T) {
			qs, err := Select(tt.length)
			if err != nil {
				t.Fatalf("Select(%s): %v", tt.length, err)
			}
			if len(qs) != tt.want {
				t.Errorf("expected %d questions, got %d", tt.want, len(qs))
			}
		})
	}
}

func TestSelectUnknownLength(t *testing.T) {
	if _, err := Select(Length("epic")); err == nil {
		t.Error("expected error for unknown length")
	}
}

func TestSelectRespectsPriority(t *testing.T) {
	qs, err := Select(LengthShort)
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range qs {
		if q.Priority != 1 {
			t.Errorf("short test included %s with priority %d", q.ID, q.Priority)
		}
	}
}

func TestSelectInterleavesAxes(t *testing.T) {
	qs, err := Select(LengthMedium)
	if err != nil {
		t.Fatal(err)
	}

	axes := AllAxes()
	for i, q := range qs {
		want := axes[i%len(axes)]
		if q.Axis != want {
			t.Fatalf("position %d: expected axis %s, got %s (%s)", i, want, q.Axis, q.ID)
		}
	}
}

func TestSelectDeterministic(t *testing.T) {
	for _, l := range AllLengths() {
		first, err := Select(l)
		if err != nil {
			t.Fatal(err)
		}
		second, err := Select(l)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Select(%s) is not deterministic", l)
		}
	}
}

func TestSelectNoDuplicates(t *testing.T) {
	qs, err := Select(LengthLong)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		if seen[q.ID] {
			t.Errorf("duplicate question %s in selection", q.ID)
		}
		seen[q.ID] = true
	}
}
