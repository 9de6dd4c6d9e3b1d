package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// deckIDLength is the nanoid length for deck and card identifiers.
const deckIDLength = 12

// NewID generates a short URL-safe identifier for decks and cards.
func NewID() string {
	return gonanoid.Must(deckIDLength)
}

// Deck is a named, user-owned collection of flashcards.
type Deck struct {
	ent.Schema
}

func (Deck) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(NewID).
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Deck) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("decks").
			Unique().
			Required(),
		edge.To("cards", Card.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
