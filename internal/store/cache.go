package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/tsam3000/flashycardycourse/internal/deck"
)

// viewCache memoizes deck listings and detail views. Every mutation
// invalidates the owner's listing and the touched deck's detail, so
// reads after a write always see fresh data.
type viewCache struct {
	mu      sync.Mutex
	lists   map[uuid.UUID][]deck.Deck
	details map[string]*DeckDetail
}

func newViewCache() *viewCache {
	return &viewCache{
		lists:   make(map[uuid.UUID][]deck.Deck),
		details: make(map[string]*DeckDetail),
	}
}

func (c *viewCache) list(owner uuid.UUID) ([]deck.Deck, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	decks, ok := c.lists[owner]
	if !ok {
		return nil, false
	}
	out := make([]deck.Deck, len(decks))
	copy(out, decks)
	return out, true
}

func (c *viewCache) putList(owner uuid.UUID, decks []deck.Deck) {
	stored := make([]deck.Deck, len(decks))
	copy(stored, decks)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists[owner] = stored
}

func (c *viewCache) detail(deckID string) (*DeckDetail, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.details[deckID]
	if !ok {
		return nil, false
	}
	return d.clone(), true
}

func (c *viewCache) putDetail(d *DeckDetail) {
	stored := d.clone()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.details[stored.Deck.ID] = stored
}

// invalidate drops the owner's listing and the deck's detail view.
func (c *viewCache) invalidate(owner uuid.UUID, deckID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.lists, owner)
	delete(c.details, deckID)
}

func (d *DeckDetail) clone() *DeckDetail {
	out := &DeckDetail{Deck: d.Deck, Cards: make([]deck.Card, len(d.Cards))}
	copy(out.Cards, d.Cards)
	return out
}
