package deckview

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/tsam3000/flashycardycourse/internal/auth"
	"github.com/tsam3000/flashycardycourse/internal/deck"
	"github.com/tsam3000/flashycardycourse/internal/router"
	"github.com/tsam3000/flashycardycourse/internal/screen"
	"github.com/tsam3000/flashycardycourse/internal/screens/study"
	"github.com/tsam3000/flashycardycourse/internal/store"
	"github.com/tsam3000/flashycardycourse/internal/ui/components"
	"github.com/tsam3000/flashycardycourse/internal/ui/layout"
)

type mode int

const (
	modeBrowse mode = iota
	modeCardForm
	modeRenameForm
	modeConfirmDeleteCard
	modeConfirmDeleteDeck
)

// detailLoadedMsg carries the result of loading the deck detail.
type detailLoadedMsg struct {
	detail *store.DeckDetail
	err    error
}

// mutationDoneMsg carries the result of any card or deck mutation.
type mutationDoneMsg struct {
	err error
}

// deckGoneMsg reports that the deck itself was deleted.
type deckGoneMsg struct {
	err error
}

// DeckScreen shows one deck's cards and supports editing them.
type DeckScreen struct {
	st     *store.Store
	cred   auth.Credentials
	deckID string

	mode     mode
	detail   *store.DeckDetail
	selected int
	loaded   bool
	errMsg   string

	// card and rename forms
	firstInput  components.TextInput
	secondInput components.TextInput
	focused     int
	editCardID  string // empty when adding
}

var _ screen.Screen = (*DeckScreen)(nil)
var _ screen.KeyHintProvider = (*DeckScreen)(nil)
var _ screen.Refresher = (*DeckScreen)(nil)

// New creates a deck screen for the given deck.
func New(st *store.Store, cred auth.Credentials, deckID string) *DeckScreen {
	return &DeckScreen{
		st:     st,
		cred:   cred,
		deckID: deckID,
	}
}

func (d *DeckScreen) Init() tea.Cmd {
	return d.load()
}

// Refresh reloads the deck after a study session ends.
func (d *DeckScreen) Refresh() tea.Cmd {
	return d.load()
}

func (d *DeckScreen) Title() string {
	if d.detail != nil {
		return d.detail.Deck.Name
	}
	return "Deck"
}

func (d *DeckScreen) KeyHints() []layout.KeyHint {
	switch d.mode {
	case modeCardForm, modeRenameForm:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeConfirmDeleteCard, modeConfirmDeleteDeck:
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "S", Description: "Study"},
		{Key: "A", Description: "Add card"},
		{Key: "E", Description: "Edit"},
		{Key: "D", Description: "Delete card"},
		{Key: "R", Description: "Rename"},
		{Key: "X", Description: "Delete deck"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DeckScreen) load() tea.Cmd {
	st, cred, id := d.st, d.cred, d.deckID
	return func() tea.Msg {
		detail, err := st.Decks().Get(context.Background(), cred, id)
		return detailLoadedMsg{detail: detail, err: err}
	}
}

func (d *DeckScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		if msg.err != nil {
			d.errMsg = msg.err.Error()
			return d, nil
		}
		d.detail = msg.detail
		d.loaded = true
		d.errMsg = ""
		if d.selected >= len(d.detail.Cards) {
			d.selected = len(d.detail.Cards) - 1
		}
		if d.selected < 0 {
			d.selected = 0
		}
		return d, nil

	case mutationDoneMsg:
		if msg.err != nil {
			if inv := deck.AsInvalid(msg.err); inv != nil {
				d.applyFieldErrors(inv)
				return d, nil
			}
			d.errMsg = msg.err.Error()
			return d, nil
		}
		d.mode = modeBrowse
		return d, d.load()

	case deckGoneMsg:
		if msg.err != nil {
			d.errMsg = msg.err.Error()
			d.mode = modeBrowse
			return d, nil
		}
		return d, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		switch d.mode {
		case modeCardForm, modeRenameForm:
			return d.updateForm(msg)
		case modeConfirmDeleteCard:
			return d.updateConfirm(msg, d.deleteCard)
		case modeConfirmDeleteDeck:
			return d.updateConfirm(msg, d.deleteDeck)
		}
		return d.updateBrowse(msg)
	}

	return d, nil
}

func (d *DeckScreen) updateBrowse(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !d.loaded {
		return d, nil
	}

	switch msg.String() {
	case "esc":
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if d.selected > 0 {
			d.selected--
		}
	case "down", "j":
		if d.selected < len(d.detail.Cards)-1 {
			d.selected++
		}
	case "s", "enter":
		if len(d.detail.Cards) == 0 {
			d.errMsg = "add a card before studying"
			return d, nil
		}
		return d, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: study.New(d.detail.Deck, d.detail.Cards),
			}
		}
	case "a":
		d.enterCardForm("", "", "")
		return d, d.firstInput.Init()
	case "e":
		if c, ok := d.selectedCard(); ok {
			d.enterCardForm(c.ID, c.Front, c.Back)
			return d, d.firstInput.Init()
		}
	case "d":
		if _, ok := d.selectedCard(); ok {
			d.mode = modeConfirmDeleteCard
		}
	case "r":
		d.enterRenameForm()
		return d, d.firstInput.Init()
	case "x":
		d.mode = modeConfirmDeleteDeck
	}

	return d, nil
}

func (d *DeckScreen) selectedCard() (deck.Card, bool) {
	if d.detail == nil || d.selected < 0 || d.selected >= len(d.detail.Cards) {
		return deck.Card{}, false
	}
	return d.detail.Cards[d.selected], true
}

func (d *DeckScreen) enterCardForm(cardID, front, back string) {
	d.mode = modeCardForm
	d.editCardID = cardID
	d.focused = 0
	d.errMsg = ""
	d.firstInput = components.NewTextInput("front", false, deck.MaxCardTextLength)
	d.secondInput = components.NewTextInput("back", false, deck.MaxCardTextLength)
	d.firstInput.SetValue(front)
	d.secondInput.SetValue(back)
	d.firstInput.Focus()
	d.secondInput.Blur()
}

func (d *DeckScreen) enterRenameForm() {
	d.mode = modeRenameForm
	d.focused = 0
	d.errMsg = ""
	d.firstInput = components.NewTextInput("deck name", false, deck.MaxNameLength)
	d.secondInput = components.NewTextInput("description (optional)", false, deck.MaxDescriptionLength)
	if d.detail != nil {
		d.firstInput.SetValue(d.detail.Deck.Name)
		d.secondInput.SetValue(d.detail.Deck.Description)
	}
	d.firstInput.Focus()
	d.secondInput.Blur()
}

func (d *DeckScreen) updateForm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		d.mode = modeBrowse
		d.errMsg = ""
		return d, nil
	case "tab", "shift+tab":
		return d, d.cycleFocus()
	case "enter":
		if d.focused == 0 {
			return d, d.cycleFocus()
		}
		if d.mode == modeRenameForm {
			return d, d.submitRename()
		}
		return d, d.submitCard()
	}

	var cmd tea.Cmd
	if d.focused == 0 {
		d.firstInput, cmd = d.firstInput.Update(msg)
	} else {
		d.secondInput, cmd = d.secondInput.Update(msg)
	}
	return d, cmd
}

func (d *DeckScreen) cycleFocus() tea.Cmd {
	d.focused = (d.focused + 1) % 2
	if d.focused == 0 {
		d.secondInput.Blur()
		return d.firstInput.Focus()
	}
	d.firstInput.Blur()
	return d.secondInput.Focus()
}

func (d *DeckScreen) updateConfirm(msg tea.KeyMsg, confirm func() tea.Cmd) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return d, confirm()
	case "n", "N", "esc":
		d.mode = modeBrowse
	}
	return d, nil
}

func (d *DeckScreen) submitCard() tea.Cmd {
	d.firstInput.ClearError()
	d.secondInput.ClearError()

	in := deck.CardInput{
		Front: d.firstInput.Value(),
		Back:  d.secondInput.Value(),
	}
	st, cred := d.st, d.cred
	deckID, cardID := d.deckID, d.editCardID
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if cardID == "" {
			_, err = st.Decks().CreateCard(ctx, cred, deckID, in)
		} else {
			_, err = st.Decks().UpdateCard(ctx, cred, cardID, in)
		}
		return mutationDoneMsg{err: err}
	}
}

func (d *DeckScreen) submitRename() tea.Cmd {
	d.firstInput.ClearError()
	d.secondInput.ClearError()

	in := deck.DeckInput{
		Name:        d.firstInput.Value(),
		Description: d.secondInput.Value(),
	}
	st, cred, deckID := d.st, d.cred, d.deckID
	return func() tea.Msg {
		_, err := st.Decks().Update(context.Background(), cred, deckID, in)
		return mutationDoneMsg{err: err}
	}
}

func (d *DeckScreen) deleteCard() tea.Cmd {
	c, ok := d.selectedCard()
	if !ok {
		d.mode = modeBrowse
		return nil
	}
	st, cred := d.st, d.cred
	return func() tea.Msg {
		err := st.Decks().DeleteCard(context.Background(), cred, c.ID)
		return mutationDoneMsg{err: err}
	}
}

func (d *DeckScreen) deleteDeck() tea.Cmd {
	st, cred, deckID := d.st, d.cred, d.deckID
	return func() tea.Msg {
		err := st.Decks().Delete(context.Background(), cred, deckID)
		return deckGoneMsg{err: err}
	}
}

func (d *DeckScreen) applyFieldErrors(inv *deck.Invalid) {
	first, second := "front", "back"
	if d.mode == modeRenameForm {
		first, second = "name", "description"
	}
	if msg, ok := inv.Fields[first]; ok {
		d.firstInput.SetError(msg)
	}
	if msg, ok := inv.Fields[second]; ok {
		d.secondInput.SetError(msg)
	}
}
