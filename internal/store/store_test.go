package store

import (
	"context"
	"errors"
	"testing"

	"github.com/tsam3000/flashycardycourse/internal/auth"
	"github.com/tsam3000/flashycardycourse/internal/deck"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testUser(t *testing.T, s *Store, name string) auth.Credentials {
	t.Helper()
	ctx := context.Background()
	if _, err := s.Users().Create(ctx, name, "test-password"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	cred, err := s.Users().Authenticate(ctx, name, "test-password")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	return cred
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestUsers_AuthenticateWrongPassword(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Users().Create(ctx, "ana", "test-password"); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := s.Users().Authenticate(ctx, "ana", "not-the-password")
	if !errors.Is(err, auth.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}

	_, err = s.Users().Authenticate(ctx, "nobody", "test-password")
	if !errors.Is(err, auth.ErrUnauthorized) {
		t.Errorf("unknown user err = %v, want ErrUnauthorized", err)
	}
}

func TestDecks_CreateListGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cred := testUser(t, s, "ana")

	d, err := s.Decks().Create(ctx, cred, deck.DeckInput{Name: "Spanish", Description: "vocab"})
	if err != nil {
		t.Fatalf("create deck: %v", err)
	}
	if d.ID == "" {
		t.Fatal("expected generated deck id")
	}

	decks, err := s.Decks().List(ctx, cred)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(decks) != 1 || decks[0].Name != "Spanish" {
		t.Fatalf("list = %+v, want one deck named Spanish", decks)
	}

	detail, err := s.Decks().Get(ctx, cred, d.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if detail.Deck.Description != "vocab" {
		t.Errorf("description = %q, want %q", detail.Deck.Description, "vocab")
	}
	if len(detail.Cards) != 0 {
		t.Errorf("cards = %d, want 0", len(detail.Cards))
	}
}

func TestDecks_ValidationFailed(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cred := testUser(t, s, "ana")

	_, err := s.Decks().Create(ctx, cred, deck.DeckInput{Name: ""})
	inv := deck.AsInvalid(err)
	if inv == nil {
		t.Fatalf("err = %v, want *deck.Invalid", err)
	}
	if _, ok := inv.Fields["name"]; !ok {
		t.Errorf("fields = %v, want a name error", inv.Fields)
	}

	// Markup-only input sanitizes to empty and fails the same way.
	_, err = s.Decks().Create(ctx, cred, deck.DeckInput{Name: "<script>x()</script>"})
	if deck.AsInvalid(err) == nil {
		t.Errorf("markup-only name err = %v, want *deck.Invalid", err)
	}
}

func TestDecks_OwnershipCollapsesToNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	ana := testUser(t, s, "ana")
	ben := testUser(t, s, "ben")

	d, err := s.Decks().Create(ctx, ana, deck.DeckInput{Name: "Spanish"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := s.Decks().Get(ctx, ben, d.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get others deck err = %v, want ErrNotFound", err)
	}
	if err := s.Decks().Delete(ctx, ben, d.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete others deck err = %v, want ErrNotFound", err)
	}
	if _, err := s.Decks().CreateCard(ctx, ben, d.ID, deck.CardInput{Front: "a", Back: "b"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("add card to others deck err = %v, want ErrNotFound", err)
	}

	// Owner still sees it.
	if _, err := s.Decks().Get(ctx, ana, d.ID); err != nil {
		t.Errorf("owner get err = %v", err)
	}
}

func TestCards_StoreOrderPreserved(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cred := testUser(t, s, "ana")

	d, err := s.Decks().Create(ctx, cred, deck.DeckInput{Name: "Spanish"})
	if err != nil {
		t.Fatalf("create deck: %v", err)
	}

	fronts := []string{"uno", "dos", "tres"}
	for _, f := range fronts {
		if _, err := s.Decks().CreateCard(ctx, cred, d.ID, deck.CardInput{Front: f, Back: f}); err != nil {
			t.Fatalf("create card %q: %v", f, err)
		}
	}

	detail, err := s.Decks().Get(ctx, cred, d.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(detail.Cards) != 3 {
		t.Fatalf("cards = %d, want 3", len(detail.Cards))
	}
	for i, f := range fronts {
		if detail.Cards[i].Front != f {
			t.Errorf("card %d front = %q, want %q", i, detail.Cards[i].Front, f)
		}
	}
}

func TestCards_UpdateDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cred := testUser(t, s, "ana")

	d, _ := s.Decks().Create(ctx, cred, deck.DeckInput{Name: "Spanish"})
	c, err := s.Decks().CreateCard(ctx, cred, d.ID, deck.CardInput{Front: "helo", Back: "hola"})
	if err != nil {
		t.Fatalf("create card: %v", err)
	}

	updated, err := s.Decks().UpdateCard(ctx, cred, c.ID, deck.CardInput{Front: "hello", Back: "hola"})
	if err != nil {
		t.Fatalf("update card: %v", err)
	}
	if updated.Front != "hello" {
		t.Errorf("front = %q, want %q", updated.Front, "hello")
	}

	if err := s.Decks().DeleteCard(ctx, cred, c.ID); err != nil {
		t.Fatalf("delete card: %v", err)
	}

	detail, _ := s.Decks().Get(ctx, cred, d.ID)
	if len(detail.Cards) != 0 {
		t.Errorf("cards = %d, want 0 after delete", len(detail.Cards))
	}
}

func TestCache_InvalidatedOnMutation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cred := testUser(t, s, "ana")

	d, _ := s.Decks().Create(ctx, cred, deck.DeckInput{Name: "Spanish"})

	// Warm both views.
	if _, err := s.Decks().List(ctx, cred); err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, err := s.Decks().Get(ctx, cred, d.ID); err != nil {
		t.Fatalf("get: %v", err)
	}

	if _, err := s.Decks().CreateCard(ctx, cred, d.ID, deck.CardInput{Front: "a", Back: "b"}); err != nil {
		t.Fatalf("create card: %v", err)
	}

	// Both views must reflect the mutation.
	detail, err := s.Decks().Get(ctx, cred, d.ID)
	if err != nil {
		t.Fatalf("get after mutation: %v", err)
	}
	if len(detail.Cards) != 1 {
		t.Errorf("cards = %d, want 1 after invalidation", len(detail.Cards))
	}

	decks, _ := s.Decks().List(ctx, cred)
	if decks[0].CardCount != 1 {
		t.Errorf("CardCount = %d, want 1 after invalidation", decks[0].CardCount)
	}
}
