package flow

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{StateUninitialized, StateSelectingLength, true},
		{StateUninitialized, StateResuming, true},
		{StateUninitialized, StateQuestionReady, false},
		{StateSelectingLength, StateInitializing, true},
		{StateInitializing, StateQuestionReady, true},
		{StateQuestionReady, StateAwaitingAnswer, true},
		{StateQuestionReady, StateCalculating, true},
		{StateAwaitingAnswer, StateProcessing, true},
		{StateAwaitingAnswer, StateNavigatingBack, true},
		{StateProcessing, StateValidating, true},
		{StateValidating, StateQuestionReady, true},
		{StateValidating, StateAwaitingAnswer, true},
		{StateNavigatingBack, StateQuestionReady, true},
		{StateCalculating, StateComplete, true},
		{StateResuming, StateQuestionReady, true},
		{StateInterrupted, StatePaused, true},
		{StateComplete, StateQuestionReady, false},
		{StateExited, StateUninitialized, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	if !StateComplete.Terminal() {
		t.Error("complete should be terminal")
	}
	if !StateExited.Terminal() {
		t.Error("exited should be terminal")
	}
	if StatePaused.Terminal() {
		t.Error("paused has an exit edge")
	}
}
