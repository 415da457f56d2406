// Package catalog owns the static question bank: loading, validation,
// and deterministic selection of per-axis-balanced question sets.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

//go:embed data/questions.json
var questionData []byte

// bank holds the loaded question bank with precomputed indices.
type bank struct {
	questions []Question
	byID      map[string]*Question
	byAxis    map[Axis][]Question
}

// b is the package-level bank singleton, set by Load.
var b *bank

// ErrCatalogUnavailable wraps any failure to load or validate the
// question bank. No test can run without it, so callers treat it as fatal.
type ErrCatalogUnavailable struct {
	Err error
}

func (e *ErrCatalogUnavailable) Error() string {
	return fmt.Sprintf("question catalog unavailable: %v", e.Err)
}

func (e *ErrCatalogUnavailable) Unwrap() error { return e.Err }

// Load parses and validates the embedded question bank and builds the
// package-level indices. It must be called once at startup before any
// other catalog accessor.
func Load() error {
	if err := validateQuestionData(questionData); err != nil {
		return &ErrCatalogUnavailable{Err: err}
	}

	var doc struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(questionData, &doc); err != nil {
		return &ErrCatalogUnavailable{Err: fmt.Errorf("parse questions: %w", err)}
	}

	nb := &bank{
		questions: doc.Questions,
		byID:      make(map[string]*Question, len(doc.Questions)),
		byAxis:    make(map[Axis][]Question),
	}
	for i := range nb.questions {
		q := &nb.questions[i]
		if _, dup := nb.byID[q.ID]; dup {
			return &ErrCatalogUnavailable{Err: fmt.Errorf("duplicate question id: %q", q.ID)}
		}
		nb.byID[q.ID] = q
		nb.byAxis[q.Axis] = append(nb.byAxis[q.Axis], *q)
	}

	// Every length must be fully servable for every axis.
	for _, l := range AllLengths() {
		cfg, _ := l.Config()
		for _, axis := range AllAxes() {
			n := 0
			for _, q := range nb.byAxis[axis] {
				if q.Priority <= cfg.MaxPriority {
					n++
				}
			}
			if n < cfg.QuestionsPerAxis {
				return &ErrCatalogUnavailable{Err: fmt.Errorf(
					"axis %s has %d questions at priority <= %d, need %d for %s test",
					axis, n, cfg.MaxPriority, cfg.QuestionsPerAxis, l)}
			}
		}
	}

	b = nb
	return nil
}

// Get returns a question by id, or an error if not found.
func Get(id string) (Question, error) {
	q, ok := b.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("question not found: %q", id)
	}
	return *q, nil
}

// All returns every question in the bank.
func All() []Question {
	return slices.Clone(b.questions)
}

// ByAxis returns all questions for an axis in bank order.
func ByAxis(axis Axis) []Question {
	return slices.Clone(b.byAxis[axis])
}

// Select builds the fixed ordered question set for a test length.
// Within each axis, questions are taken in ascending priority then id
// order; axes are then interleaved round-robin (EI, SN, TF, JP,
// EI, ...) so every four consecutive questions cover all four axes.
// The result is fully deterministic, which resume replay depends on.
func Select(length Length) ([]Question, error) {
	cfg, err := length.Config()
	if err != nil {
		return nil, err
	}

	perAxis := make(map[Axis][]Question, len(AllAxes()))
	for _, axis := range AllAxes() {
		var qs []Question
		for _, q := range b.byAxis[axis] {
			if q.Priority <= cfg.MaxPriority {
				qs = append(qs, q)
			}
		}
		sort.Slice(qs, func(i, j int) bool {
			if qs[i].Priority != qs[j].Priority {
				return qs[i].Priority < qs[j].Priority
			}
			return qs[i].ID < qs[j].ID
		})
		if len(qs) < cfg.QuestionsPerAxis {
			return nil, fmt.Errorf("axis %s: %d questions available, need %d", axis, len(qs), cfg.QuestionsPerAxis)
		}
		perAxis[axis] = qs[:cfg.QuestionsPerAxis]
	}

	selected := make([]Question, 0, cfg.QuestionsPerAxis*len(AllAxes()))
	for i := 0; i < cfg.QuestionsPerAxis; i++ {
		for _, axis := range AllAxes() {
			selected = append(selected, perAxis[axis][i])
		}
	}
	return selected, nil
}
