package deck

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Cards render in a terminal, so markup carried in from imports or pastes
// is stripped down to plain text rather than escaped.
var sanitizePolicy = bluemonday.StrictPolicy()

// Sanitize strips markup and surrounding whitespace from user-entered text.
// Runs before validation so markup-only input fails the required check.
func Sanitize(s string) string {
	return strings.TrimSpace(sanitizePolicy.Sanitize(s))
}
