package store

import (
	"context"
	"fmt"

	"github.com/tsam3000/flashycardycourse/ent"
	entcard "github.com/tsam3000/flashycardycourse/ent/card"
	entdeck "github.com/tsam3000/flashycardycourse/ent/deck"
	entuser "github.com/tsam3000/flashycardycourse/ent/user"
	"github.com/tsam3000/flashycardycourse/internal/auth"
	"github.com/tsam3000/flashycardycourse/internal/deck"
)

// CreateCard validates and appends a card to the caller's deck. New cards
// take the next position, so study order follows insertion order.
func (r *Decks) CreateCard(ctx context.Context, cred auth.Credentials, deckID string, in deck.CardInput) (deck.Card, error) {
	in.Front = deck.Sanitize(in.Front)
	in.Back = deck.Sanitize(in.Back)
	if err := deck.ValidateCard(in); err != nil {
		return deck.Card{}, err
	}

	parent, err := r.ownedDeck(ctx, cred, deckID)
	if err != nil {
		return deck.Card{}, err
	}

	position, err := parent.QueryCards().Count(ctx)
	if err != nil {
		return deck.Card{}, fmt.Errorf("count cards: %w", err)
	}

	row, err := r.client.Card.Create().
		SetFront(in.Front).
		SetBack(in.Back).
		SetPosition(position).
		SetDeck(parent).
		Save(ctx)
	if err != nil {
		return deck.Card{}, fmt.Errorf("create card: %w", err)
	}

	r.cache.invalidate(cred.UserID, deckID)
	return toCard(row, deckID), nil
}

// UpdateCard replaces a card's front and back text.
func (r *Decks) UpdateCard(ctx context.Context, cred auth.Credentials, cardID string, in deck.CardInput) (deck.Card, error) {
	in.Front = deck.Sanitize(in.Front)
	in.Back = deck.Sanitize(in.Back)
	if err := deck.ValidateCard(in); err != nil {
		return deck.Card{}, err
	}

	row, deckID, err := r.ownedCard(ctx, cred, cardID)
	if err != nil {
		return deck.Card{}, err
	}

	row, err = row.Update().
		SetFront(in.Front).
		SetBack(in.Back).
		Save(ctx)
	if err != nil {
		return deck.Card{}, fmt.Errorf("update card: %w", err)
	}

	r.cache.invalidate(cred.UserID, deckID)
	return toCard(row, deckID), nil
}

// DeleteCard removes a card from the caller's deck.
func (r *Decks) DeleteCard(ctx context.Context, cred auth.Credentials, cardID string) error {
	row, deckID, err := r.ownedCard(ctx, cred, cardID)
	if err != nil {
		return err
	}

	if err := r.client.Card.DeleteOne(row).Exec(ctx); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	r.cache.invalidate(cred.UserID, deckID)
	return nil
}

// ownedCard fetches a card whose parent deck belongs to the caller.
// Anything else is ErrNotFound.
func (r *Decks) ownedCard(ctx context.Context, cred auth.Credentials, cardID string) (*ent.Card, string, error) {
	row, err := r.client.Card.Query().
		Where(
			entcard.IDEQ(cardID),
			entcard.HasDeckWith(entdeck.HasOwnerWith(entuser.IDEQ(cred.UserID))),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("query card: %w", err)
	}

	deckID, err := row.QueryDeck().OnlyID(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("query card deck: %w", err)
	}
	return row, deckID, nil
}

// cardsOf returns a deck's cards in position order.
func (r *Decks) cardsOf(ctx context.Context, parent *ent.Deck) ([]deck.Card, error) {
	rows, err := parent.QueryCards().
		Order(ent.Asc(entcard.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	cards := make([]deck.Card, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, toCard(row, parent.ID))
	}
	return cards, nil
}

func toCard(row *ent.Card, deckID string) deck.Card {
	return deck.Card{
		ID:     row.ID,
		DeckID: deckID,
		Front:  row.Front,
		Back:   row.Back,
	}
}
