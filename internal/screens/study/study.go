package study

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tsam3000/flashycardycourse/internal/deck"
	"github.com/tsam3000/flashycardycourse/internal/router"
	"github.com/tsam3000/flashycardycourse/internal/screen"
	"github.com/tsam3000/flashycardycourse/internal/screens/summary"
	sess "github.com/tsam3000/flashycardycourse/internal/study"
	"github.com/tsam3000/flashycardycourse/internal/ui/layout"
)

// StudyScreen drives a flashcard session for one deck.
type StudyScreen struct {
	sess        *sess.Session
	state       sess.State
	unsubscribe func()
	quitConfirm bool
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New starts a fresh session over the deck's cards in store order.
func New(dk deck.Deck, cards []deck.Card) *StudyScreen {
	return resume(sess.New(dk, cards))
}

// resume wraps an existing session, keeping its order and counts.
func resume(session *sess.Session) *StudyScreen {
	s := &StudyScreen{
		sess:  session,
		state: session.State(),
	}
	s.unsubscribe = session.Subscribe(func(st sess.State) {
		s.state = st
	})
	return s
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	return s.sess.Deck().Name
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave session"},
			{Key: "N", Description: "Keep studying"},
		}
	}
	if s.state.Complete {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Summary"},
			{Key: "←", Description: "Back up"},
			{Key: "R", Description: "Restart"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	if s.state.Flipped {
		return []layout.KeyHint{
			{Key: "C", Description: "Correct"},
			{Key: "X", Description: "Incorrect"},
			{Key: "Space", Description: "Flip back"},
			{Key: "←→", Description: "Navigate"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Navigate"},
		{Key: "S", Description: "Shuffle"},
		{Key: "R", Description: "Restart"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.unsubscribe()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.quitConfirm = true
	case " ", "space":
		s.sess.Flip()
	case "left", "h":
		s.sess.Previous()
	case "right", "l":
		s.sess.Next()
	case "c":
		if s.state.Flipped {
			s.sess.MarkCorrect()
		}
	case "x":
		if s.state.Flipped {
			s.sess.MarkIncorrect()
		}
	case "s":
		s.sess.Shuffle()
	case "r":
		s.sess.Restart()
	case "enter":
		if s.state.Complete {
			return s, s.showSummary()
		}
		s.sess.Flip()
	}

	return s, nil
}

// showSummary swaps this screen for the summary so that leaving the
// summary lands back on the deck, not on a finished session. The screen
// drops its session listener here; a later resume registers its own.
func (s *StudyScreen) showSummary() tea.Cmd {
	session := s.sess
	s.unsubscribe()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(session, func() screen.Screen {
				return resume(session)
			}),
		}
	}
}
