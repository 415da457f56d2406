package flow

import (
	"os"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/abhisek/mindprint/internal/catalog"
	"github.com/abhisek/mindprint/internal/session"
)

func TestMain(m *testing.M) {
	if err := catalog.Load(); err != nil {
		panic(err)
	}
	m.Run()
}

// varied answers that trip none of the pattern rules.
var shortAnswers = []int{2, 4, 3, 5, 1, 3, 2, 4, 5, 2, 3, 1, 4, 3, 5, 2}

func newTestController(t *testing.T) (*Controller, *session.Manager) {
	t.Helper()
	mgr, err := session.NewManager(t.TempDir(), 30*time.Minute, 7*24*time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return NewController(mgr), mgr
}

func answer(t *testing.T, c *Controller, value int) {
	t.Helper()
	if _, ok := c.Present(); !ok {
		t.Fatal("no question available")
	}
	outcome, err := c.Submit(strconv.Itoa(value))
	if err != nil {
		t.Fatalf("submit %d: %v", value, err)
	}
	if !outcome.Accepted {
		t.Fatalf("submit %d rejected: %s", value, outcome.Reason)
	}
}

func TestFullShortRun(t *testing.T) {
	c, mgr := newTestController(t)

	id, err := c.Initialize(catalog.LengthShort)
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("expected a session id")
	}

	for _, v := range shortAnswers {
		answer(t, c, v)
	}

	if !c.Complete() {
		cur, total := c.Progress()
		t.Fatalf("expected completion after %d answers, at %d/%d", len(shortAnswers), cur, total)
	}

	result, err := c.Results()
	if err != nil {
		t.Fatal(err)
	}
	if len(result.TypeCode) != 4 {
		t.Errorf("malformed type code %q", result.TypeCode)
	}
	if result.Flagged {
		t.Errorf("varied answers flagged: %s", result.FlagReason)
	}
	if c.State() != StateComplete {
		t.Errorf("expected complete state, got %s", c.State())
	}

	// The completed session must be durable with the result attached.
	loaded, err := mgr.LoadCompleted(id)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Result == nil || loaded.Result.TypeCode != result.TypeCode {
		t.Error("persisted result does not match returned result")
	}
}

func TestStraightLineRunIsFlagged(t *testing.T) {
	c, _ := newTestController(t)

	if _, err := c.Initialize(catalog.LengthShort); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 16; i++ {
		answer(t, c, 3)
	}

	result, err := c.Results()
	if err != nil {
		t.Fatal(err)
	}
	if !result.Flagged {
		t.Fatal("all-neutral run should be flagged")
	}
	if result.FlagReason != "all identical" {
		t.Errorf("expected reason %q, got %q", "all identical", result.FlagReason)
	}
	// Flagging never blocks the result itself.
	if result.TypeCode != "ISFP" {
		t.Errorf("expected ISFP from all-neutral answers, got %s", result.TypeCode)
	}
}

func TestRejectedInputLeavesStateUntouched(t *testing.T) {
	c, _ := newTestController(t)

	if _, err := c.Initialize(catalog.LengthShort); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Present(); !ok {
		t.Fatal("no question available")
	}

	outcome, err := c.Submit("definitely")
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Accepted {
		t.Fatal("garbage input accepted")
	}
	if outcome.Reason == "" {
		t.Error("rejection must carry a reason")
	}

	cur, _ := c.Progress()
	if cur != 0 {
		t.Errorf("rejected input advanced progress to %d", cur)
	}

	// The same question accepts a valid retry.
	outcome, err = c.Submit("4")
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Accepted {
		t.Fatalf("valid retry rejected: %s", outcome.Reason)
	}
}

func TestBackNavigationReplacesAnswer(t *testing.T) {
	c, _ := newTestController(t)

	if _, err := c.Initialize(catalog.LengthShort); err != nil {
		t.Fatal(err)
	}

	first, _ := c.CurrentQuestion()
	answer(t, c, 5)
	answer(t, c, 2)

	if !c.Back() {
		t.Fatal("back navigation failed")
	}
	if !c.Back() {
		t.Fatal("second back navigation failed")
	}

	q, ok := c.CurrentQuestion()
	if !ok || q.ID != first.ID {
		t.Fatalf("expected to revisit %s, got %s", first.ID, q.ID)
	}

	// Re-answer replaces, never duplicates.
	answer(t, c, 1)
	sess := c.Session()
	if len(sess.Responses) != 2 {
		t.Fatalf("expected 2 stored responses, got %d", len(sess.Responses))
	}
	if sess.Responses[0].Value != 1 {
		t.Errorf("expected replaced value 1, got %d", sess.Responses[0].Value)
	}
	if sess.CurrentQuestion != 2 {
		t.Errorf("answered count drifted to %d", sess.CurrentQuestion)
	}
}

func TestBackNoopAtFirstQuestion(t *testing.T) {
	c, _ := newTestController(t)

	if _, err := c.Initialize(catalog.LengthShort); err != nil {
		t.Fatal(err)
	}
	if c.Back() {
		t.Error("back at the first question should be a no-op")
	}
}

func TestResultsBeforeCompletion(t *testing.T) {
	c, _ := newTestController(t)

	if _, err := c.Initialize(catalog.LengthShort); err != nil {
		t.Fatal(err)
	}
	answer(t, c, 3)

	if _, err := c.Results(); err == nil {
		t.Error("expected error computing results mid-test")
	}
}

func TestResumeReplayMatchesStraightRun(t *testing.T) {
	// Straight run.
	straight, _ := newTestController(t)
	if _, err := straight.Initialize(catalog.LengthShort); err != nil {
		t.Fatal(err)
	}
	for _, v := range shortAnswers {
		answer(t, straight, v)
	}
	want, err := straight.Results()
	if err != nil {
		t.Fatal(err)
	}

	// Interrupted run: answer six, drop the controller, resume, finish.
	c1, mgr := newTestController(t)
	id, err := c1.Initialize(catalog.LengthShort)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range shortAnswers[:6] {
		answer(t, c1, v)
	}
	c1.Interrupt()

	c2 := NewController(mgr)
	if err := c2.Resume(id); err != nil {
		t.Fatal(err)
	}
	cur, _ := c2.Progress()
	if cur != 6 {
		t.Fatalf("resume should land on question 7, got index %d", cur)
	}
	for _, v := range shortAnswers[6:] {
		answer(t, c2, v)
	}
	got, err := c2.Results()
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(want, got) {
		t.Errorf("resumed run diverged:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestResumeFullyAnsweredSession(t *testing.T) {
	// Every answer persisted, but the process died before the result
	// was computed and the session marked complete.
	c1, mgr := newTestController(t)
	id, err := c1.Initialize(catalog.LengthShort)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range shortAnswers {
		answer(t, c1, v)
	}

	c2 := NewController(mgr)
	if err := c2.Resume(id); err != nil {
		t.Fatal(err)
	}
	if !c2.Complete() {
		cur, total := c2.Progress()
		t.Fatalf("resumed run should be complete, at %d/%d", cur, total)
	}
	if _, ok := c2.CurrentQuestion(); ok {
		t.Error("no question should remain after a fully answered resume")
	}

	// Finalization still works from here.
	result, err := c2.Results()
	if err != nil {
		t.Fatal(err)
	}
	if len(result.TypeCode) != 4 {
		t.Errorf("malformed type code %q", result.TypeCode)
	}
	if _, err := mgr.LoadCompleted(id); err != nil {
		t.Errorf("finalized session not durable: %v", err)
	}
}

func TestResumeDegradesWhenRefreshSaveFails(t *testing.T) {
	c1, mgr := newTestController(t)
	id, err := c1.Initialize(catalog.LengthShort)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range shortAnswers[:3] {
		answer(t, c1, v)
	}
	c1.Interrupt()

	// A directory squatting on the temp path makes every save fail.
	if err := os.Mkdir(mgr.Path(id)+".tmp", 0o755); err != nil {
		t.Fatal(err)
	}

	c2 := NewController(mgr)
	if err := c2.Resume(id); err != nil {
		t.Fatalf("resume should degrade, not fail: %v", err)
	}
	degraded, warning := c2.Degraded()
	if !degraded || warning == "" {
		t.Fatalf("expected degraded mode with a warning, got %v %q", degraded, warning)
	}
	if c2.State() != StateQuestionReady {
		t.Errorf("degraded resume should still be ready, got %s", c2.State())
	}
	cur, _ := c2.Progress()
	if cur != 3 {
		t.Errorf("degraded resume lost progress, index %d", cur)
	}
}

func TestCurrentQuestionIsReadOnly(t *testing.T) {
	c, _ := newTestController(t)

	if _, err := c.Initialize(catalog.LengthShort); err != nil {
		t.Fatal(err)
	}
	c.CurrentQuestion()
	c.CurrentQuestion()
	if c.State() != StateQuestionReady {
		t.Fatalf("reading the question changed state to %s", c.State())
	}

	if _, ok := c.Present(); !ok {
		t.Fatal("no question to present")
	}
	if c.State() != StateAwaitingAnswer {
		t.Fatalf("presenting should await an answer, got %s", c.State())
	}
	c.CurrentQuestion()
	c.Present()
	if c.State() != StateAwaitingAnswer {
		t.Errorf("repeat reads changed state to %s", c.State())
	}
}

func TestResumeUnknownSession(t *testing.T) {
	c, _ := newTestController(t)

	if err := c.Resume("20990101_000000"); err == nil {
		t.Fatal("expected error resuming unknown session")
	}
	if c.State() != StateUninitialized {
		t.Errorf("failed resume should reset to uninitialized, got %s", c.State())
	}
}
