package deck

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field length limits for deck and card input.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	MaxCardTextLength    = 1000
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DeckInput is the validated input for creating or renaming a deck.
type DeckInput struct {
	Name        string `validate:"required,max=100"`
	Description string `validate:"max=500"`
}

// CardInput is the validated input for creating or editing a card.
type CardInput struct {
	Front string `validate:"required,max=1000"`
	Back  string `validate:"required,max=1000"`
}

// Invalid reports field-level validation failures. The user can correct
// the named fields and resubmit without losing entered data.
type Invalid struct {
	Fields map[string]string
}

func (e *Invalid) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// AsInvalid returns the *Invalid in err's chain, or nil.
func AsInvalid(err error) *Invalid {
	var inv *Invalid
	if errors.As(err, &inv) {
		return inv
	}
	return nil
}

// ValidateDeck checks a deck input, returning nil or *Invalid.
func ValidateDeck(in DeckInput) error {
	return check(in)
}

// ValidateCard checks a card input, returning nil or *Invalid.
func ValidateCard(in CardInput) error {
	return check(in)
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Non-validation failure (bad struct definition); programmer error.
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = message(fe)
	}
	return &Invalid{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}
