package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const assistantHistoryShown = 5

// AssistantModel is the FAQ chat. Tab fills the input with the next quick
// question.
type AssistantModel struct {
	assistant service.AssistantService

	input    textinput.Model
	quickIdx int
	errMsg   string
}

func NewAssistantModel(assistant service.AssistantService) *AssistantModel {
	input := textinput.New()
	input.Placeholder = "Ask about Aadhaar, KYC, certificates..."
	input.CharLimit = 256
	input.Width = 60

	return &AssistantModel{assistant: assistant, input: input, quickIdx: -1}
}

func (m *AssistantModel) Init() tea.Cmd {
	m.input.Reset()
	m.input.Focus()
	m.quickIdx = -1
	m.errMsg = ""
	return textinput.Blink
}

func (m *AssistantModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageDashboard, nil)
		case key.Matches(keyMsg, keys.tab):
			quick := m.assistant.QuickQuestions()
			if len(quick) > 0 {
				m.quickIdx = (m.quickIdx + 1) % len(quick)
				m.input.SetValue(quick[m.quickIdx])
				m.input.CursorEnd()
			}
			return m, nil
		case key.Matches(keyMsg, keys.clear):
			m.assistant.ClearHistory()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				m.errMsg = "Type a question first"
				return m, nil
			}
			m.errMsg = ""
			m.assistant.Ask(question)
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *AssistantModel) View() string {
	var b strings.Builder

	b.WriteString("Question │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")
	renderStatus(&b, "", m.errMsg)

	history := m.assistant.History()
	if len(history) == 0 {
		b.WriteString("\nTry one of these:\n")
		for _, q := range m.assistant.QuickQuestions() {
			b.WriteString("  • ")
			b.WriteString(q)
			b.WriteString("\n")
		}
	}

	for i, q := range history {
		if i == assistantHistoryShown {
			b.WriteString(helpStyle.Render(fmt.Sprintf("\n… %d earlier questions", len(history)-assistantHistoryShown)))
			b.WriteString("\n")
			break
		}
		b.WriteString("\n")
		b.WriteString(selectedStyle.Render("Q: " + q.Question))
		b.WriteString(helpStyle.Render(fmt.Sprintf("  [%s, %s]", q.Category, q.Timestamp.Format("15:04"))))
		b.WriteString("\n")
		b.WriteString(q.Answer)
		b.WriteString("\n")
	}

	return renderPage("DOCUMENT ASSISTANT", strings.TrimRight(b.String(), "\n"), "enter: ask │ tab: quick question │ ctrl+l: clear history │ esc: back")
}
