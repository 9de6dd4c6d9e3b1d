package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsam3000/flashycardycourse/internal/deck"
)

func TestViewCache_ListCopies(t *testing.T) {
	c := newViewCache()
	owner := uuid.New()

	c.putList(owner, []deck.Deck{{ID: "d1", Name: "Spanish"}})

	got, ok := c.list(owner)
	require.True(t, ok)
	require.Len(t, got, 1)

	// Mutating the returned slice must not poison the cache.
	got[0].Name = "mutated"

	again, ok := c.list(owner)
	require.True(t, ok)
	assert.Equal(t, "Spanish", again[0].Name)
}

func TestViewCache_DetailCopies(t *testing.T) {
	c := newViewCache()

	c.putDetail(&DeckDetail{
		Deck:  deck.Deck{ID: "d1", Name: "Spanish"},
		Cards: []deck.Card{{ID: "c1", Front: "Hello", Back: "Hola"}},
	})

	got, ok := c.detail("d1")
	require.True(t, ok)
	got.Cards[0].Front = "mutated"

	again, ok := c.detail("d1")
	require.True(t, ok)
	assert.Equal(t, "Hello", again.Cards[0].Front)
}

func TestViewCache_Invalidate(t *testing.T) {
	c := newViewCache()
	owner := uuid.New()

	c.putList(owner, []deck.Deck{{ID: "d1"}})
	c.putDetail(&DeckDetail{Deck: deck.Deck{ID: "d1"}})
	c.putDetail(&DeckDetail{Deck: deck.Deck{ID: "d2"}})

	c.invalidate(owner, "d1")

	_, ok := c.list(owner)
	assert.False(t, ok, "list should be dropped")
	_, ok = c.detail("d1")
	assert.False(t, ok, "touched detail should be dropped")
	_, ok = c.detail("d2")
	assert.True(t, ok, "other decks stay cached")
}
