package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DetailModel shows one credential with the document fields of its kind.
type DetailModel struct {
	credentials service.CredentialService
	i18n        service.TranslationService

	credential models.Credential
	details    models.DocumentDetails
	loaded     bool
	status     string
	errMsg     string
}

func NewDetailModel(credentials service.CredentialService, i18n service.TranslationService) *DetailModel {
	return &DetailModel{credentials: credentials, i18n: i18n}
}

func (m *DetailModel) Init() tea.Cmd {
	m.loaded = false
	m.status = ""
	m.errMsg = ""
	return nil
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case showCredentialMsg:
		m.credential = msg.credential
		m.details = m.credentials.DocumentDetails(msg.credential.Kind())
		m.loaded = true
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard is not available"
			return m, nil
		}
		m.status = "Credential ID copied"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageDashboard, nil)
		case key.Matches(msg, keys.copy):
			if !m.loaded {
				m.errMsg = errNoCredentialSelected.Error()
				return m, nil
			}
			return m, cmdCopy(m.credential.CredentialID)
		}
	}
	return m, nil
}

func (m *DetailModel) View() string {
	t := m.i18n.T
	if !m.loaded {
		return renderPage("CREDENTIAL", errNoCredentialSelected.Error(), "esc: back")
	}

	c := m.credential
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", c.Title, statusBadge(c.Status)))
	b.WriteString(fmt.Sprintf("%s · %s\n\n", c.Issuer, t(kindKey(c.Kind()))))

	writeField(&b, t(service.KeyDocumentNumber), m.details.DocumentNumber)
	writeField(&b, t(service.KeyIssueDate), c.IssueDate)
	if c.ExpiryDate != "" {
		writeField(&b, t(service.KeyExpiryDate), c.ExpiryDate)
	}
	writeField(&b, "Credential ID", c.CredentialID)

	b.WriteString("\nPersonal information\n")
	for _, f := range m.details.PersonalInfo {
		writeField(&b, f.Label, f.Value)
	}

	b.WriteString("\nVerification\n")
	for _, f := range m.details.VerificationDetails {
		writeField(&b, f.Label, f.Value)
	}

	renderStatus(&b, m.status, m.errMsg)

	return renderPage(strings.ToUpper(c.Title), strings.TrimRight(b.String(), "\n"), "c: copy ID │ esc: "+strings.ToLower(t(service.KeyBack)))
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("%-22s │ %s\n", fitText(label, 22), value))
}

func kindKey(kind models.CredentialKind) string {
	switch kind {
	case models.KindGovernmentID:
		return service.KeyGovernmentID
	case models.KindEducation:
		return service.KeyEducation
	case models.KindFinancial:
		return service.KeyFinancial
	default:
		return service.KeyProfessional
	}
}
