// Package study implements the in-memory state machine for one study run
// over a deck's cards. It performs no I/O and persists nothing: a session
// is created when the study screen opens and discarded when it closes.
package study

import (
	"math/rand"
	"time"

	"github.com/tsam3000/flashycardycourse/internal/deck"
)

// State is the render snapshot emitted to subscribers after every
// operation: the card under the cursor, which face is showing, progress,
// running counts, and the derived completion flag.
type State struct {
	Card           deck.Card
	HasCard        bool
	Cursor         int
	Size           int
	Flipped        bool
	CorrectCount   int
	IncorrectCount int
	Progress       float64
	Complete       bool
}

// Session sequences a fixed set of cards. The working order starts in
// store order and is only ever replaced by a permutation of the same
// cards. All operations are synchronous state transitions; calls whose
// precondition does not hold are no-ops, never errors.
type Session struct {
	deck      deck.Deck
	order     []deck.Card
	cursor    int
	flipped   bool
	correct   int
	incorrect int
	rng       *rand.Rand
	listeners map[int]func(State)
	nextID    int
}

// New creates a session over the deck's cards in store order.
// An empty card list yields a terminal session where every operation
// is a no-op.
func New(d deck.Deck, cards []deck.Card) *Session {
	order := make([]deck.Card, len(cards))
	copy(order, cards)
	return &Session{
		deck:  d,
		order: order,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Subscribe registers a listener invoked with the new state after every
// operation. The presentation layer owns the render cycle; the session
// only announces transitions. The returned function removes the
// listener; a caller that hands the session off must invoke it so the
// old listener does not keep firing.
func (s *Session) Subscribe(fn func(State)) func() {
	if s.listeners == nil {
		s.listeners = make(map[int]func(State))
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

// Deck returns the deck under study.
func (s *Session) Deck() deck.Deck {
	return s.deck
}

// Order returns a copy of the current working order.
func (s *Session) Order() []deck.Card {
	out := make([]deck.Card, len(s.order))
	copy(out, s.order)
	return out
}

// Size returns the number of cards in the session.
func (s *Session) Size() int {
	return len(s.order)
}

// Empty reports whether the session has no cards.
func (s *Session) Empty() bool {
	return len(s.order) == 0
}

// Cursor returns the index of the current card within the working order.
func (s *Session) Cursor() int {
	return s.cursor
}

// Flipped reports whether the back face is currently shown.
func (s *Session) Flipped() bool {
	return s.flipped
}

// CorrectCount returns the number of cards marked correct this run.
func (s *Session) CorrectCount() int {
	return s.correct
}

// IncorrectCount returns the number of cards marked incorrect this run.
func (s *Session) IncorrectCount() int {
	return s.incorrect
}

// Current returns the card under the cursor, or false for an empty session.
func (s *Session) Current() (deck.Card, bool) {
	if len(s.order) == 0 {
		return deck.Card{}, false
	}
	return s.order[s.cursor], true
}

// Progress returns the fraction of the deck reached, (cursor+1)/len(order).
func (s *Session) Progress() float64 {
	if len(s.order) == 0 {
		return 0
	}
	return float64(s.cursor+1) / float64(len(s.order))
}

// Complete reports whether the user has flipped the last card. Derived,
// not stored; it does not block further navigation or flips.
func (s *Session) Complete() bool {
	return len(s.order) > 0 && s.cursor == len(s.order)-1 && s.flipped
}

// State returns the current render snapshot.
func (s *Session) State() State {
	card, ok := s.Current()
	return State{
		Card:           card,
		HasCard:        ok,
		Cursor:         s.cursor,
		Size:           len(s.order),
		Flipped:        s.flipped,
		CorrectCount:   s.correct,
		IncorrectCount: s.incorrect,
		Progress:       s.Progress(),
		Complete:       s.Complete(),
	}
}

// Next advances the cursor and hides the back face. No-op on the last card.
func (s *Session) Next() {
	if s.cursor < len(s.order)-1 {
		s.cursor++
		s.flipped = false
	}
	s.notify()
}

// Previous moves the cursor back and hides the back face. No-op on the
// first card.
func (s *Session) Previous() {
	if s.cursor > 0 {
		s.cursor--
		s.flipped = false
	}
	s.notify()
}

// Flip toggles which face is shown.
func (s *Session) Flip() {
	if len(s.order) > 0 {
		s.flipped = !s.flipped
	}
	s.notify()
}

// MarkCorrect scores the current card correct, then behaves as Next.
// On the last card the count still increments while the cursor stays put,
// so repeated marks keep counting; the UI decides whether to allow that.
func (s *Session) MarkCorrect() {
	if len(s.order) == 0 {
		s.notify()
		return
	}
	s.correct++
	s.Next()
}

// MarkIncorrect scores the current card incorrect, then behaves as Next.
// Same last-card behavior as MarkCorrect.
func (s *Session) MarkIncorrect() {
	if len(s.order) == 0 {
		s.notify()
		return
	}
	s.incorrect++
	s.Next()
}

// Shuffle replaces the working order with a uniformly random permutation
// of the same cards and resets cursor, flip state, and both counts.
func (s *Session) Shuffle() {
	if len(s.order) == 0 {
		s.notify()
		return
	}

	// Fisher-Yates. Each of the n! permutations is equally likely; the
	// identity permutation is a valid outcome.
	for i := len(s.order) - 1; i >= 1; i-- {
		j := s.rng.Intn(i + 1)
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	s.cursor = 0
	s.flipped = false
	s.correct = 0
	s.incorrect = 0
	s.notify()
}

// Restart resets cursor, flip state, and both counts. The working order
// is kept as-is: restart never reshuffles.
func (s *Session) Restart() {
	s.cursor = 0
	s.flipped = false
	s.correct = 0
	s.incorrect = 0
	s.notify()
}

func (s *Session) notify() {
	if len(s.listeners) == 0 {
		return
	}
	st := s.State()
	for _, fn := range s.listeners {
		fn(st)
	}
}
