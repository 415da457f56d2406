package validator

// Verdict is the outcome of a consistency check over a full response
// sequence. Reason is empty when Valid is true.
type Verdict struct {
	Valid  bool
	Reason string
}

// PatternRule detects one suspicious answering pattern. Match returns
// a reason string, or "" if the rule does not apply.
type PatternRule interface {
	Name() string
	Match(values []int) string
}

// DefaultRules returns the pattern rules in priority order. The first
// matching rule wins: straight-lining subsumes the other two, and a
// fully alternating sequence is also maximally extreme, so ordering is
// part of the contract.
func DefaultRules() []PatternRule {
	return []PatternRule{
		&StraightLineRule{},
		&AlternatingRule{},
		&ExtremeBiasRule{},
	}
}

// CheckConsistency evaluates the ordered value sequence of a completed
// test against the default rules. It runs exactly once, at completion;
// an invalid verdict flags the result but never blocks it.
func CheckConsistency(values []int) Verdict {
	if len(values) == 0 {
		return Verdict{Valid: false, Reason: "no responses"}
	}
	for _, r := range DefaultRules() {
		if reason := r.Match(values); reason != "" {
			return Verdict{Valid: false, Reason: reason}
		}
	}
	return Verdict{Valid: true}
}

// StraightLineRule flags sequences where every answer is identical.
type StraightLineRule struct{}

func (r *StraightLineRule) Name() string { return "straight-line" }

func (r *StraightLineRule) Match(values []int) string {
	for _, v := range values[1:] {
		if v != values[0] {
			return ""
		}
	}
	return "all identical"
}

// AlternatingRule flags sequences dominated by a strict two-value
// alternation. The longest run that flips between exactly two distinct
// values must cover more than half the sequence to trigger.
type AlternatingRule struct{}

func (r *AlternatingRule) Name() string { return "alternating" }

func (r *AlternatingRule) Match(values []int) string {
	if len(values) < 4 {
		return ""
	}

	longest := 0
	run := 1
	for i := 1; i < len(values); i++ {
		extends := values[i] != values[i-1] &&
			(run < 2 || values[i] == values[i-2])
		if extends {
			run++
		} else {
			if values[i] != values[i-1] {
				run = 2
			} else {
				run = 1
			}
		}
		if run > longest {
			longest = run
		}
	}

	if longest*2 > len(values) {
		return "alternating pattern"
	}
	return ""
}

// ExtremeBiasRule flags sequences where more than 90% of answers sit at
// either end of the scale.
type ExtremeBiasRule struct{}

func (r *ExtremeBiasRule) Name() string { return "extreme-bias" }

func (r *ExtremeBiasRule) Match(values []int) string {
	extreme := 0
	for _, v := range values {
		if v == MinValue || v == MaxValue {
			extreme++
		}
	}
	if float64(extreme) > 0.9*float64(len(values)) {
		return "too extreme"
	}
	return ""
}
