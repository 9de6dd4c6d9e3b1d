package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tsam3000/flashycardycourse/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Refresher is an optional interface for screens that need to reload
// their data when they become active again after a pop.
type Refresher interface {
	Refresh() tea.Cmd
}

// SignedInMsg announces a successful sign-in so the app shell can show
// the username in the header.
type SignedInMsg struct {
	Username string
}
