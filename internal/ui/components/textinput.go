package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/tsam3000/flashycardycourse/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with Flashy styling.
type TextInput struct {
	Model    textinput.Model
	Password bool
	errMsg   string
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, password bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	if password {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}

	return TextInput{
		Model:    ti,
		Password: password,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input with any attached error below it.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.errMsg != "" {
		view += "\n  " + theme.FieldError.Render(t.errMsg)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has keyboard focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// SetError attaches a validation message shown under the input.
func (t *TextInput) SetError(msg string) {
	t.errMsg = msg
}

// ClearError removes any attached validation message.
func (t *TextInput) ClearError() {
	t.errMsg = ""
}
