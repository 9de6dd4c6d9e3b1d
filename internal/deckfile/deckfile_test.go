package deckfile

import (
	"context"
	"testing"

	"github.com/tsam3000/flashycardycourse/internal/deck"
	"github.com/tsam3000/flashycardycourse/internal/store"
)

func TestParse_Valid(t *testing.T) {
	data := []byte(`{
		"name": "Spanish basics",
		"description": "greetings",
		"cards": [
			{"front": "Hello", "back": "Hola"},
			{"front": "Bye", "back": "Adiós"}
		]
	}`)

	f, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Name != "Spanish basics" {
		t.Errorf("name = %q, want %q", f.Name, "Spanish basics")
	}
	if len(f.Cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(f.Cards))
	}
	if f.Cards[1].Back != "Adiós" {
		t.Errorf("card back = %q, want %q", f.Cards[1].Back, "Adiós")
	}
}

func TestParse_Rejected(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not JSON", `{`},
		{"missing name", `{"cards": []}`},
		{"empty name", `{"name": "", "cards": []}`},
		{"missing cards", `{"name": "x"}`},
		{"card missing back", `{"name": "x", "cards": [{"front": "a"}]}`},
		{"unknown field", `{"name": "x", "cards": [], "color": "red"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestImportExport_RoundTrip(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	if _, err := s.Users().Create(ctx, "ana", "test-password"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	cred, err := s.Users().Authenticate(ctx, "ana", "test-password")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	data := []byte(`{"name": "Spanish", "cards": [{"front": "one", "back": "uno"}, {"front": "two", "back": "dos"}]}`)

	d, err := Import(ctx, s.Decks(), cred, data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if d.CardCount != 2 {
		t.Errorf("CardCount = %d, want 2", d.CardCount)
	}

	out, err := Export(ctx, s.Decks(), cred, d.ID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := Parse(out)
	if err != nil {
		t.Fatalf("parse exported file: %v", err)
	}
	if len(f.Cards) != 2 || f.Cards[0].Front != "one" || f.Cards[1].Back != "dos" {
		t.Errorf("round trip mismatch: %+v", f.Cards)
	}
}

func TestImport_OthersDeckStaysHidden(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	for _, name := range []string{"ana", "ben"} {
		if _, err := s.Users().Create(ctx, name, "test-password"); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}
	ana, _ := s.Users().Authenticate(ctx, "ana", "test-password")
	ben, _ := s.Users().Authenticate(ctx, "ben", "test-password")

	d, err := Import(ctx, s.Decks(), ana, []byte(`{"name": "Private", "cards": []}`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if _, err := Export(ctx, s.Decks(), ben, d.ID); err == nil {
		t.Error("expected export of another user's deck to fail")
	}
}

func TestImport_InvalidCardAborts(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	if _, err := s.Users().Create(ctx, "ana", "test-password"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	cred, _ := s.Users().Authenticate(ctx, "ana", "test-password")

	// Second card sanitizes to empty text and must fail field validation.
	data := []byte(`{"name": "Spanish", "cards": [{"front": "one", "back": "uno"}, {"front": "<b></b>", "back": "dos"}]}`)

	_, err = Import(ctx, s.Decks(), cred, data)
	if deck.AsInvalid(err) == nil {
		t.Errorf("err = %v, want *deck.Invalid in chain", err)
	}
}
