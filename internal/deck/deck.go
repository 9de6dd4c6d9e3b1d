package deck

import (
	"time"

	"github.com/google/uuid"
)

// Deck is a named, user-owned collection of flashcards.
type Deck struct {
	ID          string
	Name        string
	Description string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CardCount   int
}

// Card is a front/back text pair belonging to exactly one deck.
// Card content is immutable for the duration of a study session.
type Card struct {
	ID     string
	DeckID string
	Front  string
	Back   string
}
