package question

import (
	"strconv"
	"testing"
	"time"

	"github.com/abhisek/mindprint/internal/catalog"
	"github.com/abhisek/mindprint/internal/export"
	"github.com/abhisek/mindprint/internal/flow"
	"github.com/abhisek/mindprint/internal/screens/result"
	"github.com/abhisek/mindprint/internal/session"
)

func TestMain(m *testing.M) {
	if err := catalog.Load(); err != nil {
		panic(err)
	}
	m.Run()
}

// answerN pushes n valid answers through the controller.
func answerN(t *testing.T, c *flow.Controller, n int) {
	t.Helper()
	values := []int{2, 4, 3, 5, 1, 3, 2, 4, 5, 2, 3, 1, 4, 3, 5, 2}
	for i := 0; i < n; i++ {
		if _, ok := c.Present(); !ok {
			t.Fatal("no question available")
		}
		outcome, err := c.Submit(strconv.Itoa(values[i%len(values)]))
		if err != nil {
			t.Fatal(err)
		}
		if !outcome.Accepted {
			t.Fatalf("answer rejected: %s", outcome.Reason)
		}
	}
}

func newTestDeps(t *testing.T) (*session.Manager, *export.Exporter) {
	t.Helper()
	mgr, err := session.NewManager(t.TempDir(), 30*time.Minute, 7*24*time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return mgr, export.NewExporter(t.TempDir())
}

func TestScreenForUnfinishedRun(t *testing.T) {
	mgr, exporter := newTestDeps(t)

	c1 := flow.NewController(mgr)
	id, err := c1.Initialize(catalog.LengthShort)
	if err != nil {
		t.Fatal(err)
	}
	answerN(t, c1, 4)
	c1.Interrupt()

	c2 := flow.NewController(mgr)
	if err := c2.Resume(id); err != nil {
		t.Fatal(err)
	}
	scr, err := ScreenFor(c2, exporter)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := scr.(*QuestionScreen); !ok {
		t.Fatalf("expected the answer loop, got %T", scr)
	}
}

func TestScreenForResumedFinishedRun(t *testing.T) {
	mgr, exporter := newTestDeps(t)

	// Every answer persisted, but the run died before the result was.
	c1 := flow.NewController(mgr)
	id, err := c1.Initialize(catalog.LengthShort)
	if err != nil {
		t.Fatal(err)
	}
	answerN(t, c1, 16)

	c2 := flow.NewController(mgr)
	if err := c2.Resume(id); err != nil {
		t.Fatal(err)
	}
	scr, err := ScreenFor(c2, exporter)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := scr.(*result.ResultScreen); !ok {
		t.Fatalf("expected the result screen, got %T", scr)
	}

	// Routing to results finalizes the session durably.
	if _, err := mgr.LoadCompleted(id); err != nil {
		t.Errorf("finalized session not durable: %v", err)
	}
}
