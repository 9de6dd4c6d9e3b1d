package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tsam3000/flashycardycourse/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "decks"})

	s2 := &stubScreen{title: "study"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "study" {
		t.Errorf("expected active 'study', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "decks"})
	r.Push(&stubScreen{title: "study"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "decks" {
		t.Errorf("expected active 'decks', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "decks"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

// refreshStub records Refresh calls.
type refreshStub struct {
	stubScreen
	refreshed bool
}

func (s *refreshStub) Refresh() tea.Cmd {
	s.refreshed = true
	return func() tea.Msg { return nil }
}

func TestPopRefreshesExposedScreen(t *testing.T) {
	home := &refreshStub{stubScreen: stubScreen{title: "decks"}}
	r := New(home)
	r.Push(&stubScreen{title: "study"})

	cmd := r.Pop()

	if !home.refreshed {
		t.Error("expected exposed screen to be refreshed after pop")
	}
	if cmd == nil {
		t.Error("expected refresh command from pop")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "decks"})
	r.Push(&stubScreen{title: "study"})

	summary := &stubScreen{title: "summary"}
	r.Update(ReplaceScreenMsg{Screen: summary})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "summary" {
		t.Errorf("expected active 'summary', got %q", r.Active().Title())
	}
	if !summary.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestPushScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "decks"})

	s2 := &stubScreen{title: "study"}
	r.Update(PushScreenMsg{Screen: s2})

	if r.Active() != s2 {
		t.Error("expected pushed screen to become active")
	}
}
