package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tsam3000/flashycardycourse/internal/auth"
	"github.com/tsam3000/flashycardycourse/internal/router"
	"github.com/tsam3000/flashycardycourse/internal/screen"
	"github.com/tsam3000/flashycardycourse/internal/screens/deckview"
	"github.com/tsam3000/flashycardycourse/internal/screens/home"
	"github.com/tsam3000/flashycardycourse/internal/screens/login"
	"github.com/tsam3000/flashycardycourse/internal/screens/study"
	"github.com/tsam3000/flashycardycourse/internal/store"
	"github.com/tsam3000/flashycardycourse/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	username string
	width    int
	height   int
}

// newAppModel creates a new AppModel starting at the sign-in screen.
func newAppModel(st *store.Store) AppModel {
	return AppModel{
		router: router.New(login.New(st)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.SignedInMsg:
		m.username = msg.Username
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.username, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program on top of an open store.
func Run(st *store.Store) error {
	return run(newAppModel(st))
}

// RunStudy starts the program already signed in, with a study session
// over the given deck on top of the usual home and deck screens.
func RunStudy(st *store.Store, cred auth.Credentials, username, deckID string) error {
	detail, err := st.Decks().Get(context.Background(), cred, deckID)
	if err != nil {
		return err
	}

	m := AppModel{
		router:   router.New(home.New(st, cred, username)),
		username: username,
	}
	m.router.Push(deckview.New(st, cred, deckID))
	m.router.Push(study.New(detail.Deck, detail.Cards))
	return run(m)
}

func run(m AppModel) error {
	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
