package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tsam3000/flashycardycourse/internal/auth"
	"github.com/tsam3000/flashycardycourse/internal/deck"
	"github.com/tsam3000/flashycardycourse/internal/router"
	"github.com/tsam3000/flashycardycourse/internal/screen"
	"github.com/tsam3000/flashycardycourse/internal/screens/deckview"
	"github.com/tsam3000/flashycardycourse/internal/store"
	"github.com/tsam3000/flashycardycourse/internal/ui/components"
	"github.com/tsam3000/flashycardycourse/internal/ui/layout"
	"github.com/tsam3000/flashycardycourse/internal/ui/theme"
)

type mode int

const (
	modeList mode = iota
	modeCreate
)

// decksLoadedMsg carries the result of loading the deck list.
type decksLoadedMsg struct {
	decks []deck.Deck
	err   error
}

// deckCreatedMsg carries the result of creating a deck.
type deckCreatedMsg struct {
	created deck.Deck
	err     error
}

// HomeScreen lists the signed-in user's decks.
type HomeScreen struct {
	st       *store.Store
	cred     auth.Credentials
	username string

	mode   mode
	menu   components.Menu
	decks  []deck.Deck
	loaded bool
	errMsg string

	// create form
	nameInput components.TextInput
	descInput components.TextInput
	focused   int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)

// New creates the home screen for the signed-in user.
func New(st *store.Store, cred auth.Credentials, username string) *HomeScreen {
	return &HomeScreen{
		st:       st,
		cred:     cred,
		username: username,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadDecks()
}

// Refresh reloads the deck list after returning from a deck screen.
func (h *HomeScreen) Refresh() tea.Cmd {
	return h.loadDecks()
}

func (h *HomeScreen) Title() string {
	return "Your Decks"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.mode == modeCreate {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Create"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "N", Description: "New deck"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) loadDecks() tea.Cmd {
	st, cred := h.st, h.cred
	return func() tea.Msg {
		decks, err := st.Decks().List(context.Background(), cred)
		return decksLoadedMsg{decks: decks, err: err}
	}
}

// buildMenu rebuilds the deck menu, keeping the previous selection in range.
func (h *HomeScreen) buildMenu() {
	prev := h.menu.Selected

	items := make([]components.MenuItem, 0, len(h.decks)+2)
	for _, d := range h.decks {
		d := d
		items = append(items, components.MenuItem{
			Label:  d.Name,
			Detail: cardCountLabel(d.CardCount),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: deckview.New(h.st, h.cred, d.ID),
					}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "+ New deck",
		Action: func() tea.Cmd {
			h.enterCreateMode()
			return h.nameInput.Init()
		},
	})
	items = append(items, components.MenuItem{
		Label: "Quit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	h.menu = components.NewMenu(items)
	if prev < len(items) {
		h.menu.Selected = prev
	}
}

func (h *HomeScreen) enterCreateMode() {
	h.mode = modeCreate
	h.focused = 0
	h.errMsg = ""
	h.nameInput = components.NewTextInput("deck name", false, deck.MaxNameLength)
	h.descInput = components.NewTextInput("description (optional)", false, deck.MaxDescriptionLength)
	h.nameInput.Focus()
	h.descInput.Blur()
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case decksLoadedMsg:
		if msg.err != nil {
			h.errMsg = msg.err.Error()
			return h, nil
		}
		h.decks = msg.decks
		h.loaded = true
		h.errMsg = ""
		h.buildMenu()
		return h, nil

	case deckCreatedMsg:
		if msg.err != nil {
			if inv := deck.AsInvalid(msg.err); inv != nil {
				h.applyFieldErrors(inv)
				return h, nil
			}
			h.errMsg = msg.err.Error()
			return h, nil
		}
		h.mode = modeList
		return h, tea.Batch(h.loadDecks(), func() tea.Msg {
			return router.PushScreenMsg{
				Screen: deckview.New(h.st, h.cred, msg.created.ID),
			}
		})

	case tea.KeyMsg:
		if h.mode == modeCreate {
			return h.updateCreate(msg)
		}
		switch msg.String() {
		case "n":
			h.enterCreateMode()
			return h, h.nameInput.Init()
		case "q":
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updateCreate(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		h.mode = modeList
		h.errMsg = ""
		return h, nil
	case "tab", "shift+tab":
		return h, h.cycleFocus()
	case "enter":
		if h.focused == 0 {
			return h, h.cycleFocus()
		}
		return h, h.submitCreate()
	}

	var cmd tea.Cmd
	if h.focused == 0 {
		h.nameInput, cmd = h.nameInput.Update(msg)
	} else {
		h.descInput, cmd = h.descInput.Update(msg)
	}
	return h, cmd
}

func (h *HomeScreen) cycleFocus() tea.Cmd {
	h.focused = (h.focused + 1) % 2
	if h.focused == 0 {
		h.descInput.Blur()
		return h.nameInput.Focus()
	}
	h.nameInput.Blur()
	return h.descInput.Focus()
}

func (h *HomeScreen) submitCreate() tea.Cmd {
	h.nameInput.ClearError()
	h.descInput.ClearError()

	in := deck.DeckInput{
		Name:        h.nameInput.Value(),
		Description: h.descInput.Value(),
	}
	st, cred := h.st, h.cred
	return func() tea.Msg {
		created, err := st.Decks().Create(context.Background(), cred, in)
		return deckCreatedMsg{created: created, err: err}
	}
}

func (h *HomeScreen) applyFieldErrors(inv *deck.Invalid) {
	if msg, ok := inv.Fields["name"]; ok {
		h.nameInput.SetError(msg)
	}
	if msg, ok := inv.Fields["description"]; ok {
		h.descInput.SetError(msg)
	}
}

func (h *HomeScreen) View(width, height int) string {
	if h.mode == modeCreate {
		return h.viewCreate(width, height)
	}

	if !h.loaded {
		return theme.Hint.Render("\n  Loading decks...")
	}

	var b strings.Builder

	if len(h.decks) == 0 {
		b.WriteString(theme.Subtitle.Render("No decks yet. Create one to start studying."))
		b.WriteString("\n\n")
	}

	b.WriteString(h.menu.View())

	if h.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.FieldError.Render(h.errMsg))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (h *HomeScreen) viewCreate(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("New deck"))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render("Name"))
	b.WriteString("\n")
	b.WriteString(h.nameInput.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(h.descInput.View())

	if h.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.FieldError.Render(h.errMsg))
	}

	box := theme.Card.Width(min(width-8, 60)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func cardCountLabel(n int) string {
	if n == 1 {
		return "1 card"
	}
	return fmt.Sprintf("%d cards", n)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
