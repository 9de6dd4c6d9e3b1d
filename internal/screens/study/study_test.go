package study

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tsam3000/flashycardycourse/internal/deck"
	"github.com/tsam3000/flashycardycourse/internal/router"
	"github.com/tsam3000/flashycardycourse/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testStudyScreen() *StudyScreen {
	d := deck.Deck{ID: "d1", Name: "Spanish 101"}
	cards := []deck.Card{
		{ID: "c1", DeckID: "d1", Front: "Hello", Back: "Hola"},
		{ID: "c2", DeckID: "d1", Front: "Bye", Back: "Adiós"},
		{ID: "c3", DeckID: "d1", Front: "Thanks", Back: "Gracias"},
	}
	return New(d, cards)
}

func TestStudyScreen_Title(t *testing.T) {
	s := testStudyScreen()
	if s.Title() != "Spanish 101" {
		t.Errorf("Title = %q, want %q", s.Title(), "Spanish 101")
	}
}

func TestStudyScreen_FlipOnSpace(t *testing.T) {
	s := testStudyScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress(' '))
	ss := scr.(*StudyScreen)

	if !ss.state.Flipped {
		t.Error("expected card to be flipped after space")
	}
}

func TestStudyScreen_MarkRequiresFlip(t *testing.T) {
	s := testStudyScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('c'))
	ss := scr.(*StudyScreen)

	if ss.state.CorrectCount != 0 {
		t.Errorf("CorrectCount = %d, want 0 before flipping", ss.state.CorrectCount)
	}
	if ss.state.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", ss.state.Cursor)
	}
}

func TestStudyScreen_MarkCorrectAdvances(t *testing.T) {
	s := testStudyScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress(' '))
	scr, _ = scr.Update(keyPress('c'))
	ss := scr.(*StudyScreen)

	if ss.state.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", ss.state.CorrectCount)
	}
	if ss.state.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", ss.state.Cursor)
	}
	if ss.state.Flipped {
		t.Error("expected next card to show its front")
	}
}

func TestStudyScreen_Navigation(t *testing.T) {
	s := testStudyScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	scr, _ = scr.Update(specialKey(tea.KeyLeft))
	ss := scr.(*StudyScreen)

	if ss.state.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", ss.state.Cursor)
	}
}

func TestStudyScreen_QuitConfirm(t *testing.T) {
	s := testStudyScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*StudyScreen)
	if !ss.quitConfirm {
		t.Error("expected quit confirmation after esc")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*StudyScreen)
	if ss.quitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestStudyScreen_QuitConfirm_Yes(t *testing.T) {
	s := testStudyScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after confirming quit")
	}
}

func TestStudyScreen_CompleteHandsOffToSummary(t *testing.T) {
	s := testStudyScreen()

	// Mark all three cards correct.
	var scr screen.Screen = s
	for i := 0; i < 3; i++ {
		scr, _ = scr.Update(keyPress(' '))
		scr, _ = scr.Update(keyPress('c'))
	}
	ss := scr.(*StudyScreen)
	if !ss.state.Complete {
		t.Fatal("expected session to be complete")
	}

	_, cmd := ss.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command when complete and enter pressed")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg handing off to the summary")
	}
}

func TestStudyScreen_ShuffleResetsScores(t *testing.T) {
	s := testStudyScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress(' '))
	scr, _ = scr.Update(keyPress('c'))
	scr, _ = scr.Update(keyPress('s'))
	ss := scr.(*StudyScreen)

	if ss.state.Cursor != 0 || ss.state.CorrectCount != 0 {
		t.Errorf("Cursor = %d, CorrectCount = %d, want 0 and 0 after shuffle",
			ss.state.Cursor, ss.state.CorrectCount)
	}
}

func TestStudyScreen_View(t *testing.T) {
	s := testStudyScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}

	empty := New(deck.Deck{ID: "d2", Name: "Empty"}, nil)
	if empty.View(80, 24) == "" {
		t.Error("expected non-empty view for empty deck")
	}
}

func TestStudyScreen_KeyHints(t *testing.T) {
	s := testStudyScreen()
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

func TestStudyScreen_HandoffDropsSessionListener(t *testing.T) {
	s := testStudyScreen()

	var scr screen.Screen = s
	for i := 0; i < 3; i++ {
		scr, _ = scr.Update(keyPress(' '))
		scr, _ = scr.Update(keyPress('c'))
	}
	ss := scr.(*StudyScreen)
	_, cmd := ss.Update(specialKey(tea.KeyEnter))
	cmd()

	before := ss.state
	ss.sess.Restart()
	if ss.state != before {
		t.Error("departed screen still tracks session state after handoff")
	}

	// Resuming registers exactly one fresh listener.
	next := resume(ss.sess)
	next.sess.Flip()
	if !next.state.Flipped {
		t.Error("resumed screen does not track session state")
	}
}

func TestStudyScreen_QuitConfirmYesDropsSessionListener(t *testing.T) {
	s := testStudyScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	scr, _ = scr.Update(keyPress('y'))
	ss := scr.(*StudyScreen)

	before := ss.state
	ss.sess.Flip()
	if ss.state != before {
		t.Error("departed screen still tracks session state after quitting")
	}
}
