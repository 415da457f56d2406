// Package validator sanitizes raw answer input into a bounded score and
// checks completed response sequences for low-effort answering patterns.
package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MinValue and MaxValue bound the five-point agreement scale.
	MinValue = 1
	MaxValue = 5
)

// ErrUnparsable indicates input that cannot be turned into a scale value.
type ErrUnparsable struct {
	Raw string
}

func (e *ErrUnparsable) Error() string {
	return fmt.Sprintf("cannot parse response: %q", e.Raw)
}

// ErrOutOfRange indicates a value outside the 1–5 scale.
type ErrOutOfRange struct {
	Value int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("response %d out of range %d-%d", e.Value, MinValue, MaxValue)
}

// Sanitize converts raw input into a scale value. It accepts integers,
// numeric strings, and decimals; decimals round to the nearest integer
// with ties rounding up, and out-of-range numbers clamp into [1,5].
// A leading digit rescues otherwise unparsable text such as a pasted
// option line ("4) Agree"). Everything else fails with *ErrUnparsable.
// Sanitize is idempotent: feeding its output back returns the same value.
func Sanitize(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &ErrUnparsable{Raw: raw}
	}

	if n, err := strconv.Atoi(s); err == nil {
		return clamp(n), nil
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, &ErrUnparsable{Raw: raw}
		}
		// Ties round up.
		return clamp(int(math.Floor(f + 0.5))), nil
	}

	if c := s[0]; c >= '0' && c <= '9' {
		return clamp(int(c - '0')), nil
	}

	return 0, &ErrUnparsable{Raw: raw}
}

// Validate returns *ErrOutOfRange unless 1 <= v <= 5.
func Validate(v int) error {
	if v < MinValue || v > MaxValue {
		return &ErrOutOfRange{Value: v}
	}
	return nil
}

func clamp(v int) int {
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}
