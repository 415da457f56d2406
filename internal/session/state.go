package session

import "fmt"

// State is a session's position in its lifecycle. The transition table
// below is the single source of truth; every state change goes through
// Session.Transition so no illegal edge can slip in.
type State string

const (
	StateCreated   State = "created"
	StateActive    State = "active"
	StatePaused    State = "paused"
	StateResuming  State = "resuming"
	StateCompleted State = "completed"
	StateInvalid   State = "invalid"
	StateExpired   State = "expired"
	StateFailed    State = "failed"
	StateAbandoned State = "abandoned"
	StateArchived  State = "archived"
)

// transitions lists the legal edges of the lifecycle. States absent
// from the map (Expired, Failed, Abandoned, Archived) are terminal.
var transitions = map[State][]State{
	StateCreated:   {StateActive},
	StateActive:    {StatePaused, StateCompleted, StateInvalid},
	StatePaused:    {StateResuming, StateExpired},
	StateResuming:  {StateActive, StateFailed},
	StateInvalid:   {StateActive, StateAbandoned},
	StateCompleted: {StateArchived},
}

// CanTransition reports whether the edge from -> to is legal.
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether s has no outgoing edges.
func (s State) Terminal() bool {
	return len(transitions[s]) == 0
}

// Transition moves the session to the given state, or errors on an
// illegal edge.
func (s *Session) Transition(to State) error {
	if !CanTransition(s.State, to) {
		return fmt.Errorf("illegal session transition %s -> %s", s.State, to)
	}
	s.State = to
	return nil
}
