package store

import (
	"context"
	"fmt"

	"github.com/tsam3000/flashycardycourse/ent"
	entdeck "github.com/tsam3000/flashycardycourse/ent/deck"
	entuser "github.com/tsam3000/flashycardycourse/ent/user"
	"github.com/tsam3000/flashycardycourse/internal/auth"
	"github.com/tsam3000/flashycardycourse/internal/deck"
)

// Decks performs authorized CRUD over decks and their cards. Every
// operation takes the caller's credentials; decks the caller does not
// own behave exactly like decks that do not exist.
type Decks struct {
	client *ent.Client
	cache  *viewCache
}

// DeckDetail is a deck plus its cards in store order.
type DeckDetail struct {
	Deck  deck.Deck
	Cards []deck.Card
}

// List returns the caller's decks, newest first. Served from the view
// cache when warm.
func (r *Decks) List(ctx context.Context, cred auth.Credentials) ([]deck.Deck, error) {
	if decks, ok := r.cache.list(cred.UserID); ok {
		return decks, nil
	}

	rows, err := r.client.Deck.Query().
		Where(entdeck.HasOwnerWith(entuser.IDEQ(cred.UserID))).
		Order(ent.Desc(entdeck.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}

	decks := make([]deck.Deck, 0, len(rows))
	for _, row := range rows {
		count, err := row.QueryCards().Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count cards: %w", err)
		}
		decks = append(decks, toDeck(row, cred, count))
	}

	r.cache.putList(cred.UserID, decks)
	return decks, nil
}

// Get returns a deck with its cards in store order. Served from the view
// cache when warm. ErrNotFound covers both missing and non-owned decks.
func (r *Decks) Get(ctx context.Context, cred auth.Credentials, deckID string) (*DeckDetail, error) {
	if d, ok := r.cache.detail(deckID); ok {
		// The cache is keyed by deck id; re-check ownership so a cached
		// detail can't leak across users.
		if d.Deck.OwnerID == cred.UserID {
			return d, nil
		}
		return nil, ErrNotFound
	}

	row, err := r.ownedDeck(ctx, cred, deckID)
	if err != nil {
		return nil, err
	}

	cards, err := r.cardsOf(ctx, row)
	if err != nil {
		return nil, err
	}

	detail := &DeckDetail{Deck: toDeck(row, cred, len(cards)), Cards: cards}
	r.cache.putDetail(detail)
	return detail, nil
}

// Create validates and stores a new deck for the caller.
func (r *Decks) Create(ctx context.Context, cred auth.Credentials, in deck.DeckInput) (deck.Deck, error) {
	in.Name = deck.Sanitize(in.Name)
	in.Description = deck.Sanitize(in.Description)
	if err := deck.ValidateDeck(in); err != nil {
		return deck.Deck{}, err
	}

	row, err := r.client.Deck.Create().
		SetName(in.Name).
		SetDescription(in.Description).
		SetOwnerID(cred.UserID).
		Save(ctx)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("create deck: %w", err)
	}

	r.cache.invalidate(cred.UserID, row.ID)
	return toDeck(row, cred, 0), nil
}

// Update renames a deck or changes its description.
func (r *Decks) Update(ctx context.Context, cred auth.Credentials, deckID string, in deck.DeckInput) (deck.Deck, error) {
	in.Name = deck.Sanitize(in.Name)
	in.Description = deck.Sanitize(in.Description)
	if err := deck.ValidateDeck(in); err != nil {
		return deck.Deck{}, err
	}

	row, err := r.ownedDeck(ctx, cred, deckID)
	if err != nil {
		return deck.Deck{}, err
	}

	row, err = row.Update().
		SetName(in.Name).
		SetDescription(in.Description).
		Save(ctx)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("update deck: %w", err)
	}

	count, err := row.QueryCards().Count(ctx)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("count cards: %w", err)
	}

	r.cache.invalidate(cred.UserID, deckID)
	return toDeck(row, cred, count), nil
}

// Delete removes a deck and, via cascade, its cards.
func (r *Decks) Delete(ctx context.Context, cred auth.Credentials, deckID string) error {
	row, err := r.ownedDeck(ctx, cred, deckID)
	if err != nil {
		return err
	}

	if err := r.client.Deck.DeleteOne(row).Exec(ctx); err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}

	r.cache.invalidate(cred.UserID, deckID)
	return nil
}

// ownedDeck fetches a deck constrained to the caller's ownership.
func (r *Decks) ownedDeck(ctx context.Context, cred auth.Credentials, deckID string) (*ent.Deck, error) {
	row, err := r.client.Deck.Query().
		Where(
			entdeck.IDEQ(deckID),
			entdeck.HasOwnerWith(entuser.IDEQ(cred.UserID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query deck: %w", err)
	}
	return row, nil
}

func toDeck(row *ent.Deck, cred auth.Credentials, cardCount int) deck.Deck {
	return deck.Deck{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		OwnerID:     cred.UserID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		CardCount:   cardCount,
	}
}
