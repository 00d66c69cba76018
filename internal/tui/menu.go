package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-id-wallet/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuModel is the welcome page offered to a signed-out user.
type MenuModel struct {
	i18n service.TranslationService

	idx    int
	status string
}

func NewMenuModel(i18n service.TranslationService) *MenuModel {
	return &MenuModel{i18n: i18n}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) items() []string {
	return []string{m.i18n.T(service.KeySignIn), m.i18n.T(service.KeySignUp)}
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SignedOutMsg:
		m.status = m.i18n.T(service.KeySignedOutDesc)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.idx = moveIndex(m.idx, -1, len(m.items()))
		case "down", "j":
			m.idx = moveIndex(m.idx, 1, len(m.items()))
		case "enter":
			m.status = ""
			if m.idx == 0 {
				return m, navigate(pageLogin, nil)
			}
			return m, navigate(pageSignup, nil)
		}
	}
	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	items := m.items()
	actionColWidth := lipgloss.Width("Action")
	for _, item := range items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(m.i18n.T(service.KeyAppSubtitle))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%-4s │ %-*s\n", "#", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", 4))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range items {
		b.WriteString(fmt.Sprintf("%s %-2d │ %-*s\n", cursor(i == m.idx), i+1, actionColWidth, item))
	}

	renderStatus(&b, m.status, "")

	return renderPage(strings.ToUpper(m.i18n.T(service.KeyAppTitle)), strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
