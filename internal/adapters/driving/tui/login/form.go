// Package login provides the interactive login form for the TUI.
package login

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arclight-labs/gate-cli/internal/adapters/driving/tui/styles"
	"github.com/arclight-labs/gate-cli/internal/core/domain"
)

const (
	fieldEmail = iota
	fieldPassword
	fieldCount
)

// Form is a two-field login form: email and password. Tab/enter move
// between fields; enter on the password field submits, esc aborts.
type Form struct {
	inputs  []textinput.Model
	focused int
	styles  *styles.Styles

	submitted bool
	aborted   bool
}

// NewForm creates a new login form.
func NewForm(s *styles.Styles) *Form {
	if s == nil {
		s = styles.DefaultStyles()
	}

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 40

	return &Form{
		inputs:  []textinput.Model{email, password},
		focused: fieldEmail,
		styles:  s,
	}
}

// Init initialises the form.
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			f.aborted = true
			return f, tea.Quit
		case tea.KeyEnter:
			if f.focused == fieldPassword {
				if f.Params().Validate() == nil {
					f.submitted = true
					return f, tea.Quit
				}
				// Incomplete input: send focus back to the first
				// empty field.
				if f.inputs[fieldEmail].Value() == "" {
					return f, f.focus(fieldEmail)
				}
				return f, nil
			}
			return f, f.focus(f.focused + 1)
		case tea.KeyTab, tea.KeyDown:
			return f, f.focus((f.focused + 1) % fieldCount)
		case tea.KeyShiftTab, tea.KeyUp:
			return f, f.focus((f.focused + fieldCount - 1) % fieldCount)
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return f, cmd
}

// View renders the form.
func (f *Form) View() string {
	title := f.styles.Title.Render("Sign in to gate")
	email := lipgloss.JoinHorizontal(
		lipgloss.Center,
		f.styles.Label.Render("Email    "),
		f.styles.InputField.Render(f.inputs[fieldEmail].View()),
	)
	password := lipgloss.JoinHorizontal(
		lipgloss.Center,
		f.styles.Label.Render("Password "),
		f.styles.InputField.Render(f.inputs[fieldPassword].View()),
	)
	hint := f.styles.Muted.Render("enter to submit · esc to cancel")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", email, password, "", hint) + "\n"
}

// Params returns the credentials currently entered in the form.
func (f *Form) Params() domain.LoginParams {
	return domain.LoginParams{
		Email:    f.inputs[fieldEmail].Value(),
		Password: f.inputs[fieldPassword].Value(),
	}
}

// Submitted returns true if the form was completed.
func (f *Form) Submitted() bool {
	return f.submitted
}

// Aborted returns true if the user cancelled the form.
func (f *Form) Aborted() bool {
	return f.aborted
}

func (f *Form) focus(idx int) tea.Cmd {
	f.inputs[f.focused].Blur()
	f.focused = idx
	return f.inputs[f.focused].Focus()
}

// Run displays the form and blocks until it is submitted or aborted.
// It returns the entered credentials and whether the form was submitted.
func Run(s *styles.Styles) (domain.LoginParams, bool, error) {
	form := NewForm(s)
	model, err := tea.NewProgram(form).Run()
	if err != nil {
		return domain.LoginParams{}, false, err
	}

	finished, ok := model.(*Form)
	if !ok || !finished.Submitted() {
		return domain.LoginParams{}, false, nil
	}
	return finished.Params(), true, nil
}
