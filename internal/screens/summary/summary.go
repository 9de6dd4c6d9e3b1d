package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tsam3000/flashycardycourse/internal/router"
	"github.com/tsam3000/flashycardycourse/internal/screen"
	sess "github.com/tsam3000/flashycardycourse/internal/study"
	"github.com/tsam3000/flashycardycourse/internal/ui/components"
	"github.com/tsam3000/flashycardycourse/internal/ui/layout"
	"github.com/tsam3000/flashycardycourse/internal/ui/theme"
)

// SummaryScreen shows the result of a finished study session and offers
// to run the deck again. The resume factory rebuilds a study screen over
// the same session so the replay keeps the session's card order.
type SummaryScreen struct {
	session *sess.Session
	correct int
	wrong   int
	menu    components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary for the given finished session.
func New(session *sess.Session, resume func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{
		session: session,
		correct: session.CorrectCount(),
		wrong:   session.IncorrectCount(),
	}

	items := []components.MenuItem{
		{Label: "Study again", Detail: "same order", Action: func() tea.Cmd {
			session.Restart()
			return replaceWith(resume)
		}},
		{Label: "Shuffle and retry", Detail: "new order", Action: func() tea.Cmd {
			session.Shuffle()
			return replaceWith(resume)
		}},
		{Label: "Back to deck", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
	}
	s.menu = components.NewMenu(items)
	return s
}

func replaceWith(resume func() screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: resume()}
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back to deck"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Session complete!"))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render(s.session.Deck().Name))
	b.WriteString("\n\n")

	marked := s.correct + s.wrong
	statsLine := theme.Correct.Render(fmt.Sprintf("✓ %d correct", s.correct)) +
		"    " +
		theme.Incorrect.Render(fmt.Sprintf("✗ %d incorrect", s.wrong))
	b.WriteString(statsLine)
	b.WriteString("\n")

	if marked > 0 {
		accuracy := float64(s.correct) / float64(marked)
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Accuracy: %.0f%%", accuracy*100)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.menu.View())

	box := theme.Card.Width(min(width-8, 52)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
