package deck

import (
	"strings"
	"testing"
)

func TestValidateDeck(t *testing.T) {
	tests := []struct {
		name      string
		in        DeckInput
		wantField string
	}{
		{"valid", DeckInput{Name: "Spanish"}, ""},
		{"valid with description", DeckInput{Name: "Spanish", Description: "vocab"}, ""},
		{"empty name", DeckInput{Name: ""}, "name"},
		{"name too long", DeckInput{Name: strings.Repeat("x", MaxNameLength+1)}, "name"},
		{"description too long", DeckInput{Name: "ok", Description: strings.Repeat("x", MaxDescriptionLength+1)}, "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeck(tt.in)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("ValidateDeck = %v, want nil", err)
				}
				return
			}

			inv := AsInvalid(err)
			if inv == nil {
				t.Fatalf("ValidateDeck = %v, want *Invalid", err)
			}
			if _, ok := inv.Fields[tt.wantField]; !ok {
				t.Errorf("fields = %v, want error on %q", inv.Fields, tt.wantField)
			}
		})
	}
}

func TestValidateCard(t *testing.T) {
	if err := ValidateCard(CardInput{Front: "Hello", Back: "Hola"}); err != nil {
		t.Errorf("valid card: %v", err)
	}

	err := ValidateCard(CardInput{Front: "", Back: strings.Repeat("x", MaxCardTextLength+1)})
	inv := AsInvalid(err)
	if inv == nil {
		t.Fatalf("err = %v, want *Invalid", err)
	}
	if len(inv.Fields) != 2 {
		t.Errorf("fields = %v, want errors on both front and back", inv.Fields)
	}
}

func TestInvalid_Error(t *testing.T) {
	err := ValidateCard(CardInput{Front: "", Back: ""})
	msg := err.Error()
	if !strings.Contains(msg, "front") || !strings.Contains(msg, "back") {
		t.Errorf("error message %q should name both fields", msg)
	}
}
