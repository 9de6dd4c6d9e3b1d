package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tsam3000/flashycardycourse/internal/auth"
	"github.com/tsam3000/flashycardycourse/internal/router"
	"github.com/tsam3000/flashycardycourse/internal/screen"
	"github.com/tsam3000/flashycardycourse/internal/screens/home"
	"github.com/tsam3000/flashycardycourse/internal/store"
	"github.com/tsam3000/flashycardycourse/internal/ui/components"
	"github.com/tsam3000/flashycardycourse/internal/ui/layout"
	"github.com/tsam3000/flashycardycourse/internal/ui/theme"
)

// authResultMsg carries the outcome of a sign-in or registration attempt.
type authResultMsg struct {
	cred     auth.Credentials
	username string
	err      error
}

// LoginScreen collects a username and password and signs the user in.
// Ctrl+N toggles between signing in and creating a new profile.
type LoginScreen struct {
	st         *store.Store
	username   components.TextInput
	password   components.TextInput
	focused    int // 0 = username, 1 = password
	register   bool
	submitting bool
	errMsg     string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a new LoginScreen backed by st.
func New(st *store.Store) *LoginScreen {
	s := &LoginScreen{
		st:       st,
		username: components.NewTextInput("username", false, 40),
		password: components.NewTextInput("password", true, 72),
	}
	s.username.Focus()
	s.password.Blur()
	return s
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.username.Init()
}

func (s *LoginScreen) Title() string {
	if s.register {
		return "Create Profile"
	}
	return "Sign In"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	mode := "Create profile"
	if s.register {
		mode = "Sign in instead"
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+N", Description: mode},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		s.submitting = false
		if msg.err != nil {
			s.errMsg = authErrorText(msg.err)
			return s, nil
		}
		return s, tea.Batch(
			func() tea.Msg { return screen.SignedInMsg{Username: msg.username} },
			func() tea.Msg {
				return router.ReplaceScreenMsg{
					Screen: home.New(s.st, msg.cred, msg.username),
				}
			},
		)

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			return s, s.cycleFocus()
		case "enter":
			if s.focused == 0 {
				return s, s.cycleFocus()
			}
			return s.submit()
		case "ctrl+n":
			s.register = !s.register
			s.errMsg = ""
			return s, nil
		}
	}

	return s, s.updateInputs(msg)
}

func (s *LoginScreen) cycleFocus() tea.Cmd {
	s.focused = (s.focused + 1) % 2
	if s.focused == 0 {
		s.password.Blur()
		return s.username.Focus()
	}
	s.username.Blur()
	return s.password.Focus()
}

func (s *LoginScreen) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.focused == 0 {
		s.username, cmd = s.username.Update(msg)
	} else {
		s.password, cmd = s.password.Update(msg)
	}
	return cmd
}

func (s *LoginScreen) submit() (screen.Screen, tea.Cmd) {
	username := strings.TrimSpace(s.username.Value())
	password := s.password.Value()

	if username == "" {
		s.errMsg = "username is required"
		return s, nil
	}
	if s.register {
		if err := auth.ValidatePassword(password); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
	} else if password == "" {
		s.errMsg = "password is required"
		return s, nil
	}

	s.errMsg = ""
	s.submitting = true

	st := s.st
	register := s.register
	return s, func() tea.Msg {
		ctx := context.Background()
		if register {
			if _, err := st.Users().Create(ctx, username, password); err != nil {
				return authResultMsg{err: err}
			}
		}
		cred, err := st.Users().Authenticate(ctx, username, password)
		if err != nil {
			return authResultMsg{err: err}
		}
		return authResultMsg{cred: cred, username: username}
	}
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	heading := "Sign in to your profile"
	if s.register {
		heading = "Create a new profile"
	}
	b.WriteString(theme.Title.Render(heading))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render("Username"))
	b.WriteString("\n")
	b.WriteString(s.username.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render("Password"))
	b.WriteString("\n")
	b.WriteString(s.password.View())
	b.WriteString("\n\n")

	if s.submitting {
		b.WriteString(theme.Hint.Render("Signing in..."))
	} else if s.errMsg != "" {
		b.WriteString(theme.FieldError.Render(s.errMsg))
	}

	box := theme.Card.Width(min(width-8, 52)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// authErrorText maps authentication failures to user-facing text.
func authErrorText(err error) string {
	if errors.Is(err, auth.ErrUnauthorized) {
		return "invalid username or password"
	}
	return err.Error()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
