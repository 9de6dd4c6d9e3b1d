// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/tsam3000/flashycardycourse/ent/card"
	"github.com/tsam3000/flashycardycourse/ent/deck"
	"github.com/tsam3000/flashycardycourse/ent/schema"
	"github.com/tsam3000/flashycardycourse/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescFront is the schema descriptor for front field.
	cardDescFront := cardFields[1].Descriptor()
	// card.FrontValidator is a validator for the "front" field. It is called by the builders before save.
	card.FrontValidator = cardDescFront.Validators[0].(func(string) error)
	// cardDescBack is the schema descriptor for back field.
	cardDescBack := cardFields[2].Descriptor()
	// card.BackValidator is a validator for the "back" field. It is called by the builders before save.
	card.BackValidator = cardDescBack.Validators[0].(func(string) error)
	// cardDescPosition is the schema descriptor for position field.
	cardDescPosition := cardFields[3].Descriptor()
	// card.DefaultPosition holds the default value on creation for the position field.
	card.DefaultPosition = cardDescPosition.Default.(int)
	// cardDescID is the schema descriptor for id field.
	cardDescID := cardFields[0].Descriptor()
	// card.DefaultID holds the default value on creation for the id field.
	card.DefaultID = cardDescID.Default.(func() string)
	// card.IDValidator is a validator for the "id" field. It is called by the builders before save.
	card.IDValidator = cardDescID.Validators[0].(func(string) error)
	deckFields := schema.Deck{}.Fields()
	_ = deckFields
	// deckDescName is the schema descriptor for name field.
	deckDescName := deckFields[1].Descriptor()
	// deck.NameValidator is a validator for the "name" field. It is called by the builders before save.
	deck.NameValidator = deckDescName.Validators[0].(func(string) error)
	// deckDescCreatedAt is the schema descriptor for created_at field.
	deckDescCreatedAt := deckFields[3].Descriptor()
	// deck.DefaultCreatedAt holds the default value on creation for the created_at field.
	deck.DefaultCreatedAt = deckDescCreatedAt.Default.(func() time.Time)
	// deckDescUpdatedAt is the schema descriptor for updated_at field.
	deckDescUpdatedAt := deckFields[4].Descriptor()
	// deck.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	deck.DefaultUpdatedAt = deckDescUpdatedAt.Default.(func() time.Time)
	// deck.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	deck.UpdateDefaultUpdatedAt = deckDescUpdatedAt.UpdateDefault.(func() time.Time)
	// deckDescID is the schema descriptor for id field.
	deckDescID := deckFields[0].Descriptor()
	// deck.DefaultID holds the default value on creation for the id field.
	deck.DefaultID = deckDescID.Default.(func() string)
	// deck.IDValidator is a validator for the "id" field. It is called by the builders before save.
	deck.IDValidator = deckDescID.Validators[0].(func(string) error)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
