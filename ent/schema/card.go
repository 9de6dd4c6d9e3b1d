package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Card is a front/back text pair belonging to exactly one deck.
type Card struct {
	ent.Schema
}

func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(NewID).
			NotEmpty().
			Immutable(),
		field.String("front").
			NotEmpty(),
		field.String("back").
			NotEmpty(),
		field.Int("position").
			Default(0).
			Comment("Order within the deck; study sessions receive cards in this order"),
	}
}

func (Card) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("deck", Deck.Type).
			Ref("cards").
			Unique().
			Required(),
	}
}

func (Card) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("position"),
	}
}
