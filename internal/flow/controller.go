// Package flow drives question sequencing: it mediates between raw
// input and the validator/scoring engine and decides when the test is
// complete. All persistence goes through the session manager; a submit
// call blocks until sanitize, validate, score, and persist are done, so
// the stored state always covers every answered question before the
// next one is shown.
package flow

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mindprint/internal/catalog"
	"github.com/abhisek/mindprint/internal/scoring"
	"github.com/abhisek/mindprint/internal/session"
	"github.com/abhisek/mindprint/internal/validator"
)

// Controller sequences one test run. It is not safe for concurrent use;
// the application is single-threaded by design.
type Controller struct {
	mgr    *session.Manager
	engine *scoring.Engine

	state     State
	questions []catalog.Question
	sess      *session.Session
	index     int

	degraded bool
	warning  string
}

// SubmitOutcome reports what happened to one submitted answer.
type SubmitOutcome struct {
	Accepted bool
	Reason   string // rejection reason when not accepted
	Warning  string // non-fatal persistence warning when accepted
}

// NewController creates a controller backed by the given manager.
func NewController(mgr *session.Manager) *Controller {
	return &Controller{
		mgr:    mgr,
		engine: scoring.NewEngine(),
		state:  StateUninitialized,
	}
}

// State returns the current flow state.
func (c *Controller) State() State { return c.state }

// Session returns the active session, or nil before initialization.
func (c *Controller) Session() *session.Session { return c.sess }

// Degraded reports whether persistence has failed and the test is
// running in-memory only.
func (c *Controller) Degraded() (bool, string) { return c.degraded, c.warning }

// Initialize selects the question set for the chosen length, creates a
// durable session, and resets the scoring engine. A persistence failure
// is downgraded to in-memory operation with a warning.
func (c *Controller) Initialize(length catalog.Length) (string, error) {
	if err := c.transition(StateSelectingLength); err != nil {
		return "", err
	}

	questions, err := catalog.Select(length)
	if err != nil {
		c.state = StateUninitialized
		return "", err
	}
	if err := c.transition(StateInitializing); err != nil {
		return "", err
	}

	sess, err := c.mgr.Create(length, len(questions))
	if err != nil {
		var perr *session.PersistenceError
		if !errors.As(err, &perr) {
			return "", err
		}
		c.degrade(perr)
	}

	c.questions = questions
	c.sess = sess
	c.index = 0
	c.engine.Reset()

	if err := c.transition(StateQuestionReady); err != nil {
		return "", err
	}
	return sess.ID, nil
}

// Resume loads a persisted session, rebuilds the question set from the
// stored length, and replays every stored response into the scoring
// engine in stored order. Replay reproduces the exact dimension scores
// of the original live accumulation.
func (c *Controller) Resume(sessionID string) error {
	if err := c.transition(StateResuming); err != nil {
		return err
	}

	sess, err := c.mgr.Resume(sessionID)
	if err != nil {
		var perr *session.PersistenceError
		if sess == nil || !errors.As(err, &perr) {
			c.state = StateUninitialized
			return err
		}
		// The session loaded fine; only the window-refresh save failed.
		// Continue in-memory with a warning.
		c.degrade(perr)
	}

	questions, err := catalog.Select(sess.Length)
	if err != nil {
		c.state = StateUninitialized
		return err
	}

	c.engine.Reset()
	for _, r := range sess.Responses {
		c.engine.AddResponse(r.QuestionID, r.Axis, r.Value, r.ReverseCoded)
	}

	c.questions = questions
	c.sess = sess
	c.index = sess.CurrentQuestion

	return c.transition(StateQuestionReady)
}

// CurrentQuestion returns the question at the current index, or ok=false
// once every question is answered. Read-only; safe to call from render
// paths.
func (c *Controller) CurrentQuestion() (catalog.Question, bool) {
	if c.index >= len(c.questions) {
		return catalog.Question{}, false
	}
	return c.questions[c.index], true
}

// Present marks the current question as shown and hands control to the
// answer prompt. Idempotent while an answer is already pending.
func (c *Controller) Present() (catalog.Question, bool) {
	q, ok := c.CurrentQuestion()
	if !ok {
		return q, false
	}
	if c.state == StateQuestionReady {
		c.state = StateAwaitingAnswer
	}
	return q, true
}

// Submit routes a raw answer through sanitize and validate, then scores
// and persists it and advances to the next question. On rejection the
// outcome carries the reason and no state changes. On a persistence
// failure the answer is kept in memory and the outcome carries a
// degraded-mode warning.
func (c *Controller) Submit(raw string) (SubmitOutcome, error) {
	if c.state != StateAwaitingAnswer {
		return SubmitOutcome{}, fmt.Errorf("no question awaiting an answer (state %s)", c.state)
	}
	if c.index >= len(c.questions) {
		return SubmitOutcome{}, fmt.Errorf("question index %d out of range", c.index)
	}
	q := c.questions[c.index]

	if err := c.transition(StateProcessing); err != nil {
		return SubmitOutcome{}, err
	}
	if err := c.transition(StateValidating); err != nil {
		return SubmitOutcome{}, err
	}

	value, err := validator.Sanitize(raw)
	if err == nil {
		err = validator.Validate(value)
	}
	if err != nil {
		// Rejected input leaves everything untouched; re-prompt.
		c.state = StateAwaitingAnswer
		return SubmitOutcome{Accepted: false, Reason: err.Error()}, nil
	}

	c.engine.AddResponse(q.ID, q.Axis, value, q.ReverseCoded)

	outcome := SubmitOutcome{Accepted: true}
	resp := session.Response{
		QuestionID:   q.ID,
		Axis:         q.Axis,
		Value:        value,
		ReverseCoded: q.ReverseCoded,
		AnsweredAt:   time.Now(),
	}
	if err := c.mgr.Record(c.sess, resp); err != nil {
		var perr *session.PersistenceError
		if !errors.As(err, &perr) {
			return SubmitOutcome{}, err
		}
		c.degrade(perr)
		outcome.Warning = c.warning
	}

	c.index++
	c.state = StateQuestionReady
	return outcome, nil
}

// Back moves to the previous question. The stored response for the
// revisited question is kept and overwritten by the next submit. No-op
// at the first question.
func (c *Controller) Back() bool {
	if c.index == 0 {
		return false
	}
	if c.state == StateAwaitingAnswer {
		if err := c.transition(StateNavigatingBack); err != nil {
			return false
		}
		c.state = StateQuestionReady
	}
	c.index--
	return true
}

// Complete reports whether every question has been answered.
func (c *Controller) Complete() bool {
	return len(c.questions) > 0 && c.index >= len(c.questions)
}

// Progress returns the current question index and the total count.
func (c *Controller) Progress() (current, total int) {
	return c.index, len(c.questions)
}

// Results runs the consistency check over the full ordered response
// set, computes the typed result, and marks the session complete. A
// confirmed-invalid pattern never blocks completion: the result is
// computed anyway and carries the flag for the caller to surface.
func (c *Controller) Results() (*scoring.Result, error) {
	if !c.Complete() {
		cur, total := c.Progress()
		return nil, fmt.Errorf("test incomplete: %d of %d questions answered", cur, total)
	}
	if err := c.transition(StateCalculating); err != nil {
		return nil, err
	}

	verdict := validator.CheckConsistency(c.sess.Values())
	result := c.engine.DetermineType()
	if !verdict.Valid {
		result.Flagged = true
		result.FlagReason = verdict.Reason
	}

	if err := c.mgr.MarkComplete(c.sess, &result); err != nil {
		var perr *session.PersistenceError
		if errors.As(err, &perr) {
			c.degrade(perr)
		} else {
			return nil, err
		}
	}

	if err := c.transition(StateComplete); err != nil {
		return nil, err
	}
	return &result, nil
}

// Interrupt performs a best-effort synchronous save of the in-memory
// session before the process exits. Safe to call in any state.
func (c *Controller) Interrupt() {
	if c.state == StateQuestionReady || c.state == StateAwaitingAnswer {
		c.state = StateInterrupted
		c.state = StatePaused
	}
	if c.sess != nil && !c.sess.Completed && !c.degraded {
		if err := c.mgr.Save(c.sess); err != nil {
			var perr *session.PersistenceError
			if errors.As(err, &perr) {
				c.degrade(perr)
			}
		}
	}
}

// degrade records a persistence failure and switches to in-memory mode.
func (c *Controller) degrade(perr *session.PersistenceError) {
	c.degraded = true
	c.warning = fmt.Sprintf("progress is no longer being saved: %v", perr)
}
