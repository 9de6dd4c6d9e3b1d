package deckview

import (
	"strings"
	"testing"

	"github.com/tsam3000/flashycardycourse/internal/auth"
	"github.com/tsam3000/flashycardycourse/internal/deck"
)

func TestDeckScreen_CardValidationErrorShownInline(t *testing.T) {
	d := New(nil, auth.Credentials{}, "d1")
	d.enterCardForm("", "", "")

	scr, _ := d.Update(mutationDoneMsg{err: &deck.Invalid{Fields: map[string]string{
		"front": "must not be empty",
	}}})
	dd := scr.(*DeckScreen)

	if dd.mode != modeCardForm {
		t.Error("expected form to stay open on validation failure")
	}
	if !strings.Contains(dd.firstInput.View(), "must not be empty") {
		t.Error("expected field error on the front input")
	}
	if strings.Contains(dd.secondInput.View(), "must not be empty") {
		t.Error("back input should not carry the front error")
	}
}

func TestDeckScreen_RenameValidationErrorShownInline(t *testing.T) {
	d := New(nil, auth.Credentials{}, "d1")
	d.enterRenameForm()

	scr, _ := d.Update(mutationDoneMsg{err: &deck.Invalid{Fields: map[string]string{
		"name": "must be at most 100 characters",
	}}})
	dd := scr.(*DeckScreen)

	if dd.mode != modeRenameForm {
		t.Error("expected form to stay open on validation failure")
	}
	if !strings.Contains(dd.firstInput.View(), "must be at most 100 characters") {
		t.Error("expected field error on the name input")
	}
}

func TestDeckScreen_KeyHintsBrowse(t *testing.T) {
	d := New(nil, auth.Credentials{}, "d1")

	var keys []string
	for _, h := range d.KeyHints() {
		keys = append(keys, h.Key)
	}
	joined := strings.Join(keys, " ")
	for _, want := range []string{"S", "A", "E", "D", "R", "X", "Esc"} {
		if !strings.Contains(" "+joined+" ", " "+want+" ") {
			t.Errorf("browse hints missing %q (got %q)", want, joined)
		}
	}
}
