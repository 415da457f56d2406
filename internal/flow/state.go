package flow

import "fmt"

// State is the controller's position in the test flow. Transitions are
// driven only by the controller's own operations; the table keeps every
// edge auditable.
type State string

const (
	StateUninitialized   State = "uninitialized"
	StateSelectingLength State = "selecting-length"
	StateInitializing    State = "initializing"
	StateQuestionReady   State = "question-ready"
	StateAwaitingAnswer  State = "awaiting-answer"
	StateProcessing      State = "processing"
	StateValidating      State = "validating"
	StateNavigatingBack  State = "navigating-back"
	StateCalculating     State = "calculating"
	StateResuming        State = "resuming"
	StateInterrupted     State = "interrupted"
	StatePaused          State = "paused"
	StateComplete        State = "complete"
	StateExited          State = "exited"
)

var transitions = map[State][]State{
	StateUninitialized:   {StateSelectingLength, StateResuming},
	StateSelectingLength: {StateInitializing, StateExited},
	StateInitializing:    {StateQuestionReady},
	StateQuestionReady:   {StateAwaitingAnswer, StateCalculating, StateInterrupted, StateExited},
	StateAwaitingAnswer:  {StateProcessing, StateNavigatingBack, StateInterrupted, StateExited},
	StateProcessing:      {StateValidating},
	StateValidating:      {StateQuestionReady, StateAwaitingAnswer, StateCalculating},
	StateNavigatingBack:  {StateQuestionReady},
	StateCalculating:     {StateComplete},
	StateResuming:        {StateQuestionReady, StateUninitialized},
	StateInterrupted:     {StatePaused},
	StatePaused:          {StateExited},
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

// transition moves the controller to the given state, or errors on an
// illegal edge.
func (c *Controller) transition(to State) error {
	if !CanTransition(c.state, to) {
		return fmt.Errorf("illegal flow transition %s -> %s", c.state, to)
	}
	c.state = to
	return nil
}
