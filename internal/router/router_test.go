package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindprint/internal/screen"
)

type fakeScreen struct {
	name    string
	initRan bool
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRan = true
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(int, int) string                    { return f.name }
func (f *fakeScreen) Title() string                           { return f.name }

func TestPushAndPop(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	q := &fakeScreen{name: "question"}
	r.Push(q)
	if r.Depth() != 2 || r.Active().Title() != "question" {
		t.Fatalf("after push: depth %d, active %q", r.Depth(), r.Active().Title())
	}
	if !q.initRan {
		t.Error("pushed screen was not initialized")
	}

	r.Pop()
	if r.Depth() != 1 || r.Active().Title() != "home" {
		t.Fatalf("after pop: depth %d, active %q", r.Depth(), r.Active().Title())
	}
}

func TestPopNeverEmptiesStack(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Pop()
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth %d after popping at bottom", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "question"})

	res := &fakeScreen{name: "result"}
	r.Replace(res)

	if r.Depth() != 2 {
		t.Errorf("replace changed depth to %d", r.Depth())
	}
	if r.Active().Title() != "result" {
		t.Errorf("active is %q, want result", r.Active().Title())
	}
	if !res.initRan {
		t.Error("replacement screen was not initialized")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	r.Update(PushScreenMsg{Screen: &fakeScreen{name: "length"}})
	if r.Active().Title() != "length" {
		t.Fatalf("push message ignored, active %q", r.Active().Title())
	}

	r.Update(ReplaceScreenMsg{Screen: &fakeScreen{name: "question"}})
	if r.Active().Title() != "question" || r.Depth() != 2 {
		t.Fatalf("replace message: depth %d, active %q", r.Depth(), r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Fatalf("pop message ignored, active %q", r.Active().Title())
	}
}

func TestViewRendersActive(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "top"})
	if got := r.View(80, 24); got != "top" {
		t.Errorf("View() = %q, want top", got)
	}
}
