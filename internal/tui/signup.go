package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	signupFirstName = iota
	signupLastName
	signupEmail
	signupPhone
	signupPassword
	signupPIN
)

var signupLabels = []string{"First name", "Last name", "Email", "Phone", "Password", "PIN"}

// SignupModel collects the account form and submits it in one command.
type SignupModel struct {
	ctx  context.Context
	auth service.ClientAuthService
	i18n service.TranslationService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewSignupModel(ctx context.Context, auth service.ClientAuthService, i18n service.TranslationService) *SignupModel {
	return &SignupModel{ctx: ctx, auth: auth, i18n: i18n, inputs: newSignupInputs()}
}

func newSignupInputs() []textinput.Model {
	inputs := make([]textinput.Model, len(signupLabels))
	for i := range inputs {
		in := textinput.New()
		in.Width = 40
		in.CharLimit = 64
		inputs[i] = in
	}

	inputs[signupFirstName].Placeholder = "Rahul"
	inputs[signupLastName].Placeholder = "Sharma"
	inputs[signupEmail].Placeholder = "rahul@example.com"
	inputs[signupPhone].Placeholder = "98765 43210"
	inputs[signupPhone].CharLimit = 16
	inputs[signupPassword].Placeholder = "at least 6 characters"
	inputs[signupPassword].EchoMode = textinput.EchoPassword
	inputs[signupPassword].EchoCharacter = '*'
	inputs[signupPIN].Placeholder = "4 digits"
	inputs[signupPIN].CharLimit = 4
	inputs[signupPIN].EchoMode = textinput.EchoPassword
	inputs[signupPIN].EchoCharacter = '•'

	inputs[signupFirstName].Focus()
	return inputs
}

func (m *SignupModel) Init() tea.Cmd {
	m.inputs = newSignupInputs()
	m.focus = 0
	m.submitting = false
	m.errMsg = ""
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(signupDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		phone := result.profile.Phone
		return m, func() tea.Msg { return AuthenticatedMsg{Phone: phone} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			if m.submitting {
				return m, nil
			}
			return m, navigate(pageMenu, nil)
		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(m.request())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SignupModel) request() models.SignupRequest {
	value := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }
	return models.SignupRequest{
		FirstName: value(signupFirstName),
		LastName:  value(signupLastName),
		Email:     value(signupEmail),
		Phone:     value(signupPhone),
		Password:  m.inputs[signupPassword].Value(),
		PIN:       value(signupPIN),
	}
}

func (m *SignupModel) cmdSignup(req models.SignupRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		profile, err := auth.Signup(ctx, req)
		return signupDoneMsg{profile: profile, err: err}
	}
}

func (m *SignupModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *SignupModel) View() string {
	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────────────────────────\n")
	for i, label := range signupLabels {
		b.WriteString(fmt.Sprintf("%-10s │ [%s]\n", label, m.inputs[i].View()))
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[" + m.i18n.T(service.KeySignUp) + "]\n")
	}

	renderStatus(&b, "", m.errMsg)

	return renderPage(strings.ToUpper(m.i18n.T(service.KeySignUp)), strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: next / submit")
}
