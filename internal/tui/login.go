// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel drives the phone → OTP → PIN wizard. It owns a single input whose
// meaning follows the wizard step. Each submit runs as a command, and further
// submits are ignored until its [loginStepMsg] arrives. On success an
// [AuthenticatedMsg] is produced and handled by [RootModel].
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService
	i18n service.TranslationService
	opts Options

	flow       *service.LoginFlow
	step       service.LoginStep
	input      textinput.Model
	submitting bool
	errMsg     string
	mockHint   bool
	sentTo     string
}

// NewLoginModel creates a [LoginModel]. opts.MockOTPCode is shown as a hint
// when the OTP session was issued offline.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService, i18n service.TranslationService, opts Options) *LoginModel {
	m := &LoginModel{
		ctx:   ctx,
		auth:  auth,
		i18n:  i18n,
		opts:  opts,
		input: textinput.New(),
	}
	m.input.Width = 40
	m.reset()
	return m
}

// Init implements [tea.Model]. Every visit starts a fresh wizard.
func (m *LoginModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m *LoginModel) reset() {
	m.flow = m.auth.StartLogin()
	m.step = m.flow.Step()
	m.submitting = false
	m.errMsg = ""
	m.mockHint = false
	m.sentTo = ""
	m.configureInput()
}

func (m *LoginModel) configureInput() {
	m.input.Reset()
	m.input.EchoMode = textinput.EchoNormal

	switch m.step {
	case service.StepPhoneEntry:
		m.input.Placeholder = "98765 43210"
		m.input.CharLimit = 16
	case service.StepOTPPending:
		m.input.Placeholder = "123456"
		m.input.CharLimit = 6
	case service.StepPINEntry:
		m.input.Placeholder = "••••"
		m.input.CharLimit = 4
		m.input.EchoMode = textinput.EchoPassword
		m.input.EchoCharacter = '•'
	}
	m.input.Focus()
}

// Update implements [tea.Model]. Handled messages:
//   - [loginStepMsg] clears submitting state and either moves to the next step
//     or shows the error.
//   - esc steps the wizard back, or returns to the menu from the first step.
//   - enter submits the current step.
//
// All other key events are forwarded to the input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginStepMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			m.input.SetValue("")
			return m, nil
		}
		return m, m.advance()
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			if m.submitting {
				return m, nil
			}
			if m.step == service.StepPhoneEntry {
				return m, navigate(pageMenu, nil)
			}
			m.flow.Back()
			m.step = m.flow.Step()
			m.errMsg = ""
			if m.step == service.StepPhoneEntry {
				m.mockHint = false
				m.sentTo = ""
			}
			m.configureInput()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.errMsg = m.prompt()
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit(m.step, value)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *LoginModel) advance() tea.Cmd {
	m.step = m.flow.Step()
	switch m.step {
	case service.StepOTPPending:
		m.mockHint = m.flow.Session().IsMock()
		m.sentTo = m.flow.Phone()
	case service.StepAuthenticated:
		phone := m.flow.Phone()
		return func() tea.Msg { return AuthenticatedMsg{Phone: phone} }
	}
	m.configureInput()
	return nil
}

func (m *LoginModel) cmdSubmit(step service.LoginStep, value string) tea.Cmd {
	ctx := m.ctx
	flow := m.flow

	return func() tea.Msg {
		var err error
		switch step {
		case service.StepPhoneEntry:
			err = flow.SubmitPhone(ctx, value)
		case service.StepOTPPending:
			err = flow.SubmitOTP(ctx, value)
		case service.StepPINEntry:
			err = flow.SubmitPIN(ctx, value)
		}
		return loginStepMsg{err: err}
	}
}

func (m *LoginModel) prompt() string {
	switch m.step {
	case service.StepOTPPending:
		return m.i18n.T(service.KeyEnterOTP)
	case service.StepPINEntry:
		return m.i18n.T(service.KeyEnterPIN)
	default:
		return m.i18n.T(service.KeyEnterPhone)
	}
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	b.WriteString("Step ")
	b.WriteString(stepNumber(m.step))
	b.WriteString(" of 3\n\n")

	if m.sentTo != "" && m.step != service.StepPhoneEntry {
		b.WriteString(m.i18n.T(service.KeyOTPSentTo))
		b.WriteString(" ")
		b.WriteString(m.opts.PhonePrefix)
		b.WriteString(" ")
		b.WriteString(m.sentTo)
		b.WriteString("\n")
		if m.mockHint {
			b.WriteString(helpStyle.Render("Offline mode: use code " + m.opts.MockOTPCode))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.prompt())
	b.WriteString("\n[")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Please wait...]\n")
	} else {
		b.WriteString("\n[Continue]\n")
	}

	renderStatus(&b, "", m.errMsg)

	return renderPage(strings.ToUpper(m.i18n.T(service.KeySignIn)), strings.TrimRight(b.String(), "\n"), "esc: back │ enter: continue")
}

func stepNumber(step service.LoginStep) string {
	switch step {
	case service.StepOTPPending:
		return "2"
	case service.StepPINEntry, service.StepAuthenticated:
		return "3"
	default:
		return "1"
	}
}
