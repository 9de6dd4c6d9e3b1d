package home

import (
	"strings"
	"testing"

	"github.com/tsam3000/flashycardycourse/internal/auth"
	"github.com/tsam3000/flashycardycourse/internal/deck"
)

func TestHomeScreen_CreateValidationErrorShownInline(t *testing.T) {
	h := New(nil, auth.Credentials{}, "ana")
	h.enterCreateMode()

	scr, _ := h.Update(deckCreatedMsg{err: &deck.Invalid{Fields: map[string]string{
		"name": "must not be empty",
	}}})
	hh := scr.(*HomeScreen)

	if hh.mode != modeCreate {
		t.Error("expected form to stay open on validation failure")
	}
	if !strings.Contains(hh.nameInput.View(), "must not be empty") {
		t.Error("expected field error on the name input")
	}
	if !strings.Contains(hh.viewCreate(80, 24), "must not be empty") {
		t.Error("expected field error in the rendered form")
	}
}

func TestHomeScreen_CreateStoreErrorShown(t *testing.T) {
	h := New(nil, auth.Credentials{}, "ana")
	h.enterCreateMode()

	scr, _ := h.Update(deckCreatedMsg{err: errDummy("boom")})
	hh := scr.(*HomeScreen)

	if hh.errMsg != "boom" {
		t.Errorf("errMsg = %q, want %q", hh.errMsg, "boom")
	}
}

type errDummy string

func (e errDummy) Error() string { return string(e) }
