// Package deckfile reads and writes the JSON deck transfer format used
// by the import and export commands.
package deckfile

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/tsam3000/flashycardycourse/internal/auth"
	"github.com/tsam3000/flashycardycourse/internal/deck"
	"github.com/tsam3000/flashycardycourse/internal/store"
)

// File is the on-disk deck shape: {name, description?, cards[]}.
type File struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Cards       []FileCard `json:"cards"`
}

// FileCard is a single card in the transfer format.
type FileCard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// schemaJSON is the structural contract for imports. Field-level limits
// (lengths, emptiness after sanitizing) are enforced by deck validation
// afterwards, same as interactive input.
const schemaJSON = `{
	"type": "object",
	"required": ["name", "cards"],
	"additionalProperties": false,
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"description": {"type": "string"},
		"cards": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["front", "back"],
				"additionalProperties": false,
				"properties": {
					"front": {"type": "string"},
					"back": {"type": "string"}
				}
			}
		}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(schemaJSON), &parsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://deckfile.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// Parse validates raw JSON against the deck file schema and decodes it.
func Parse(data []byte) (*File, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("compile deck file schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("deck file does not match the expected format: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode deck file: %w", err)
	}
	return &f, nil
}

// Import creates a new deck for the caller from raw deck file bytes.
// Cards are created in file order, so study order matches the file.
func Import(ctx context.Context, decks *store.Decks, cred auth.Credentials, data []byte) (deck.Deck, error) {
	f, err := Parse(data)
	if err != nil {
		return deck.Deck{}, err
	}

	d, err := decks.Create(ctx, cred, deck.DeckInput{
		Name:        f.Name,
		Description: f.Description,
	})
	if err != nil {
		return deck.Deck{}, err
	}

	for i, c := range f.Cards {
		_, err := decks.CreateCard(ctx, cred, d.ID, deck.CardInput{
			Front: c.Front,
			Back:  c.Back,
		})
		if err != nil {
			return deck.Deck{}, fmt.Errorf("card %d: %w", i+1, err)
		}
	}

	d.CardCount = len(f.Cards)
	return d, nil
}

// Export renders one of the caller's decks in the transfer format.
func Export(ctx context.Context, decks *store.Decks, cred auth.Credentials, deckID string) ([]byte, error) {
	detail, err := decks.Get(ctx, cred, deckID)
	if err != nil {
		return nil, err
	}

	f := File{
		Name:        detail.Deck.Name,
		Description: detail.Deck.Description,
		Cards:       make([]FileCard, 0, len(detail.Cards)),
	}
	for _, c := range detail.Cards {
		f.Cards = append(f.Cards, FileCard{Front: c.Front, Back: c.Back})
	}

	out, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode deck file: %w", err)
	}
	return append(out, '\n'), nil
}
