package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// SecurityModel renders the security score with its factors. Tab toggles the
// tips list.
type SecurityModel struct {
	security service.SecurityService
	i18n     service.TranslationService

	showTips bool
}

func NewSecurityModel(security service.SecurityService, i18n service.TranslationService) *SecurityModel {
	return &SecurityModel{security: security, i18n: i18n}
}

func (m *SecurityModel) Init() tea.Cmd {
	m.showTips = false
	return nil
}

func (m *SecurityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageDashboard, nil)
		case key.Matches(keyMsg, keys.tab):
			m.showTips = !m.showTips
		}
	}
	return m, nil
}

func (m *SecurityModel) View() string {
	analysis := m.security.Analysis()
	breakdown := m.security.ScoreBreakdown()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %d / %d\n", m.i18n.T(service.KeySecurityScore), analysis.CurrentScore, analysis.MaxScore))
	b.WriteString(helpStyle.Render(fmt.Sprintf("enabled %.0f%% │ partial %.0f%% │ disabled %.0f%% │ missing %.0f%%",
		breakdown.Enabled, breakdown.Partial, breakdown.Disabled, breakdown.Missing)))
	b.WriteString("\n\n")

	for _, f := range analysis.Factors {
		b.WriteString(fmt.Sprintf("%s %-28s +%-3d %s\n", factorMark(f.Status), fitText(f.Name, 28), f.Impact, f.Status))
	}

	if len(analysis.CriticalIssues) > 0 {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Critical issues"))
		b.WriteString("\n")
		for _, f := range analysis.CriticalIssues {
			b.WriteString("  • ")
			b.WriteString(f.Name)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nRecommendations\n")
	for _, r := range analysis.Recommendations {
		b.WriteString("  • ")
		b.WriteString(r)
		b.WriteString("\n")
	}

	b.WriteString("\nTo reach 100%\n")
	for _, r := range m.security.RecommendationsForPerfectScore() {
		b.WriteString("  • ")
		b.WriteString(r)
		b.WriteString("\n")
	}

	if m.showTips {
		b.WriteString("\nTips\n")
		for _, tip := range m.security.SecurityTips() {
			b.WriteString("  • ")
			b.WriteString(tip)
			b.WriteString("\n")
		}
	}

	return renderPage(strings.ToUpper(m.i18n.T(service.KeySecurityCenter)), strings.TrimRight(b.String(), "\n"), "tab: tips │ esc: back")
}

func factorMark(status models.FactorStatus) string {
	switch status {
	case models.FactorEnabled:
		return okStyle.Render("✓")
	case models.FactorPartial:
		return "◐"
	default:
		return errorStyle.Render("✗")
	}
}
