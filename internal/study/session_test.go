package study

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/tsam3000/flashycardycourse/internal/deck"
)

func testDeck() deck.Deck {
	return deck.Deck{ID: "d1", Name: "Spanish basics"}
}

func testCards(n int) []deck.Card {
	cards := make([]deck.Card, n)
	for i := range cards {
		cards[i] = deck.Card{
			ID:     fmt.Sprintf("c%d", i),
			DeckID: "d1",
			Front:  fmt.Sprintf("front %d", i),
			Back:   fmt.Sprintf("back %d", i),
		}
	}
	return cards
}

func TestNew_InitialState(t *testing.T) {
	s := New(testDeck(), testCards(3))

	if s.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0", s.Cursor())
	}
	if s.Flipped() {
		t.Error("expected Flipped to be false")
	}
	if s.CorrectCount() != 0 || s.IncorrectCount() != 0 {
		t.Errorf("counts = %d/%d, want 0/0", s.CorrectCount(), s.IncorrectCount())
	}
	if s.Size() != 3 {
		t.Errorf("Size = %d, want 3", s.Size())
	}

	// Store order is preserved, not sorted.
	card, ok := s.Current()
	if !ok {
		t.Fatal("expected a current card")
	}
	if card.ID != "c0" {
		t.Errorf("current card = %s, want c0", card.ID)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	cards := testCards(3)
	s := New(testDeck(), cards)

	// Mutating the caller's slice must not affect the session.
	cards[0] = deck.Card{ID: "other"}
	if got, _ := s.Current(); got.ID != "c0" {
		t.Errorf("current card = %s, want c0 after caller mutation", got.ID)
	}
}

func TestBasicWalk(t *testing.T) {
	cards := []deck.Card{
		{ID: "c1", Front: "Hello", Back: "Hola"},
		{ID: "c2", Front: "Bye", Back: "Adiós"},
	}
	s := New(testDeck(), cards)

	s.Flip()
	if !s.Flipped() {
		t.Fatal("expected Flipped after Flip")
	}

	s.MarkCorrect()
	if s.CorrectCount() != 1 {
		t.Errorf("CorrectCount = %d, want 1", s.CorrectCount())
	}
	if s.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1", s.Cursor())
	}
	if s.Flipped() {
		t.Error("expected Flipped reset after MarkCorrect")
	}

	s.Flip()
	if !s.Complete() {
		t.Error("expected Complete on last card with back shown")
	}

	// No next card: count still increments, cursor stays.
	s.MarkIncorrect()
	if s.IncorrectCount() != 1 {
		t.Errorf("IncorrectCount = %d, want 1", s.IncorrectCount())
	}
	if s.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1 (no next card)", s.Cursor())
	}
}

func TestEdgeNoOps(t *testing.T) {
	s := New(testDeck(), testCards(2))

	s.Previous()
	if s.Cursor() != 0 {
		t.Errorf("Previous at first card moved cursor to %d", s.Cursor())
	}

	s.Next()
	s.Flip()
	s.Next() // at last card; must leave cursor AND flip state alone
	if s.Cursor() != 1 {
		t.Errorf("Next at last card moved cursor to %d", s.Cursor())
	}
	if !s.Flipped() {
		t.Error("Next at last card cleared the flip state")
	}
}

func TestFlipResetOnMove(t *testing.T) {
	s := New(testDeck(), testCards(3))

	s.Flip()
	s.Next()
	if s.Flipped() {
		t.Error("Next did not reset Flipped")
	}

	s.Flip()
	s.Previous()
	if s.Flipped() {
		t.Error("Previous did not reset Flipped")
	}
}

func TestRestart_KeepsOrder(t *testing.T) {
	s := New(testDeck(), testCards(4))
	s.rng = rand.New(rand.NewSource(7))

	s.Shuffle()
	before := s.Order()

	s.Flip()
	s.MarkCorrect()
	s.MarkIncorrect()

	s.Restart()
	if s.Cursor() != 0 || s.Flipped() || s.CorrectCount() != 0 || s.IncorrectCount() != 0 {
		t.Errorf("Restart left state cursor=%d flipped=%v counts=%d/%d",
			s.Cursor(), s.Flipped(), s.CorrectCount(), s.IncorrectCount())
	}

	after := s.Order()
	for i := range before {
		if before[i].ID != after[i].ID {
			t.Fatalf("Restart changed order at %d: %s != %s", i, before[i].ID, after[i].ID)
		}
	}
}

func TestShuffle_ResetsAndPermutes(t *testing.T) {
	s := New(testDeck(), testCards(5))
	s.Flip()
	s.MarkCorrect()

	s.Shuffle()
	if s.Cursor() != 0 || s.Flipped() || s.CorrectCount() != 0 || s.IncorrectCount() != 0 {
		t.Errorf("Shuffle left state cursor=%d flipped=%v counts=%d/%d",
			s.Cursor(), s.Flipped(), s.CorrectCount(), s.IncorrectCount())
	}
	assertPermutation(t, testCards(5), s.Order())
}

func TestShuffle_SingleCard(t *testing.T) {
	s := New(testDeck(), testCards(1))
	s.Flip()
	s.MarkCorrect()

	s.Shuffle()
	if s.CorrectCount() != 0 {
		t.Errorf("CorrectCount = %d, want 0 after shuffle", s.CorrectCount())
	}
	if got, _ := s.Current(); got.ID != "c0" {
		t.Errorf("current card = %s, want c0", got.ID)
	}
}

func TestEmptyDeck(t *testing.T) {
	s := New(testDeck(), nil)

	s.Next()
	s.Previous()
	s.Flip()
	s.MarkCorrect()
	s.MarkIncorrect()
	s.Shuffle()
	s.Restart()

	if s.Cursor() != 0 || s.Flipped() || s.CorrectCount() != 0 || s.IncorrectCount() != 0 {
		t.Errorf("empty session mutated: cursor=%d flipped=%v counts=%d/%d",
			s.Cursor(), s.Flipped(), s.CorrectCount(), s.IncorrectCount())
	}
	if s.Complete() {
		t.Error("empty session must never be complete")
	}
	if _, ok := s.Current(); ok {
		t.Error("empty session returned a current card")
	}
	if s.Progress() != 0 {
		t.Errorf("Progress = %f, want 0", s.Progress())
	}
}

// TestInvariants_RandomWalk drives a session through a long random
// operation sequence and checks the permutation and cursor-bounds
// invariants plus score monotonicity after every step.
func TestInvariants_RandomWalk(t *testing.T) {
	original := testCards(6)
	s := New(testDeck(), original)
	s.rng = rand.New(rand.NewSource(1))

	ops := []func(){
		s.Next, s.Previous, s.Flip,
		s.MarkCorrect, s.MarkIncorrect,
		s.Shuffle, s.Restart,
	}

	r := rand.New(rand.NewSource(2))
	prevCorrect, prevIncorrect := 0, 0
	for i := 0; i < 2000; i++ {
		opIdx := r.Intn(len(ops))
		ops[opIdx]()

		if s.Cursor() < 0 || s.Cursor() >= s.Size() {
			t.Fatalf("step %d: cursor %d out of bounds [0,%d)", i, s.Cursor(), s.Size())
		}
		assertPermutation(t, original, s.Order())

		resetOp := opIdx >= 5 // Shuffle or Restart
		if !resetOp {
			if s.CorrectCount() < prevCorrect || s.IncorrectCount() < prevIncorrect {
				t.Fatalf("step %d: counts decreased without reset", i)
			}
		} else if s.CorrectCount() != 0 || s.IncorrectCount() != 0 {
			t.Fatalf("step %d: reset op left counts %d/%d", i, s.CorrectCount(), s.IncorrectCount())
		}
		prevCorrect, prevIncorrect = s.CorrectCount(), s.IncorrectCount()
	}
}

// TestShuffle_Uniformity shuffles a 4-card deck many times and runs a
// chi-square test against the uniform distribution over all 24 orderings.
func TestShuffle_Uniformity(t *testing.T) {
	const trials = 24000

	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		s := New(testDeck(), testCards(4))
		s.rng = rand.New(rand.NewSource(int64(i)))
		s.Shuffle()

		ids := make([]string, 0, 4)
		for _, c := range s.Order() {
			ids = append(ids, c.ID)
		}
		counts[strings.Join(ids, ",")]++
	}

	if len(counts) != 24 {
		t.Fatalf("observed %d orderings, want 24", len(counts))
	}

	expected := float64(trials) / 24
	var chi2 float64
	for _, n := range counts {
		d := float64(n) - expected
		chi2 += d * d / expected
	}

	// Critical value for df=23 at alpha=0.001.
	if chi2 > 49.73 {
		t.Errorf("chi-square = %.2f, exceeds 49.73; shuffle is not uniform", chi2)
	}
}

func TestSubscribe_EmitsAfterEveryOperation(t *testing.T) {
	s := New(testDeck(), testCards(2))

	var states []State
	s.Subscribe(func(st State) { states = append(states, st) })

	s.Flip()
	s.MarkCorrect()
	s.Previous()
	s.Previous() // no-op, still emits

	if len(states) != 4 {
		t.Fatalf("emissions = %d, want 4", len(states))
	}

	last := states[len(states)-1]
	if last.Cursor != 0 || last.CorrectCount != 1 {
		t.Errorf("last state cursor=%d correct=%d, want 0/1", last.Cursor, last.CorrectCount)
	}
}

func TestSubscribe_UnsubscribeStopsEmissions(t *testing.T) {
	s := New(testDeck(), testCards(2))

	var first, second int
	unsub := s.Subscribe(func(State) { first++ })
	s.Subscribe(func(State) { second++ })

	s.Flip()
	unsub()
	s.Flip()
	s.Next()

	if first != 1 {
		t.Errorf("removed listener emissions = %d, want 1", first)
	}
	if second != 3 {
		t.Errorf("remaining listener emissions = %d, want 3", second)
	}
}

func TestSubscribe_UnsubscribeTwiceIsHarmless(t *testing.T) {
	s := New(testDeck(), testCards(1))

	var n int
	unsub := s.Subscribe(func(State) { n++ })
	unsub()
	unsub()

	s.Flip()
	if n != 0 {
		t.Errorf("emissions after unsubscribe = %d, want 0", n)
	}
}

func assertPermutation(t *testing.T, original, current []deck.Card) {
	t.Helper()
	if len(original) != len(current) {
		t.Fatalf("order length = %d, want %d", len(current), len(original))
	}

	want := make([]string, 0, len(original))
	got := make([]string, 0, len(current))
	for i := range original {
		want = append(want, original[i].ID)
		got = append(got, current[i].ID)
	}
	sort.Strings(want)
	sort.Strings(got)
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("order is not a permutation of the original card set")
		}
	}
}
