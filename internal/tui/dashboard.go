package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is swapped in tests; headless terminals have no clipboard.
var writeClipboard = clipboard.WriteAll

// DashboardModel lists the wallet credentials and links every other page.
type DashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger

	credentials []models.Credential
	idx         int
	unread      int
	status      string
	errMsg      string
	signingOut  bool
}

func NewDashboardModel(ctx context.Context, services *service.ClientServices, logger *logger.Logger) *DashboardModel {
	return &DashboardModel{ctx: ctx, services: services, logger: logger}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.credentials = m.services.CredentialService.Credentials()
	m.idx = moveIndex(m.idx, 0, len(m.credentials))
	m.signingOut = false
	m.errMsg = ""
	return m.cmdLoadUnread()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsLoadedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "*DashboardModel.Update").Msg("loading unread count failed")
			return m, nil
		}
		m.unread = msg.unread
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard is not available"
			return m, nil
		}
		m.errMsg = ""
		m.status = "Credential ID copied"
		return m, cmdClearStatus()
	case languageChangedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = m.services.TranslationService.T(switchedKey(msg.lang))
		return m, cmdClearStatus()
	case SignedOutMsg:
		m.signingOut = false
		m.errMsg = humanizeError(msg.Err)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *DashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.signingOut {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		m.idx = moveIndex(m.idx, -1, len(m.credentials))
	case key.Matches(msg, keys.down):
		m.idx = moveIndex(m.idx, 1, len(m.credentials))
	case key.Matches(msg, keys.enter):
		if c, ok := m.selected(); ok {
			return m, navigate(pageDetail, showCredentialMsg{credential: c})
		}
	case key.Matches(msg, keys.copy):
		if c, ok := m.selected(); ok {
			return m, cmdCopy(c.CredentialID)
		}
	case key.Matches(msg, keys.export):
		return m, navigate(pageExport, nil)
	case key.Matches(msg, keys.notifications):
		return m, navigate(pageNotifications, nil)
	case key.Matches(msg, keys.assistant):
		return m, navigate(pageAssistant, nil)
	case key.Matches(msg, keys.security):
		return m, navigate(pageSecurity, nil)
	case key.Matches(msg, keys.profile):
		return m, navigate(pageProfile, nil)
	case key.Matches(msg, keys.language):
		return m, m.cmdToggleLanguage()
	case key.Matches(msg, keys.signOut):
		m.signingOut = true
		return m, m.cmdSignOut()
	}
	return m, nil
}

func (m *DashboardModel) selected() (models.Credential, bool) {
	if m.idx < 0 || m.idx >= len(m.credentials) {
		return models.Credential{}, false
	}
	return m.credentials[m.idx], true
}

func (m *DashboardModel) cmdLoadUnread() tea.Cmd {
	ctx := m.ctx
	notifications := m.services.NotificationService

	return func() tea.Msg {
		n, err := notifications.UnreadCount(ctx)
		return notificationsLoadedMsg{unread: n, err: err}
	}
}

func (m *DashboardModel) cmdToggleLanguage() tea.Cmd {
	ctx := m.ctx
	i18n := m.services.TranslationService

	return func() tea.Msg {
		next := models.LanguageHindi
		if i18n.Language(ctx) == models.LanguageHindi {
			next = models.LanguageEnglish
		}
		return languageChangedMsg{lang: next, err: i18n.SetLanguage(ctx, next)}
	}
}

func (m *DashboardModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		return SignedOutMsg{Err: auth.SignOut(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func switchedKey(lang models.Language) string {
	if lang == models.LanguageHindi {
		return service.KeySwitchedToHindi
	}
	return service.KeySwitchedToEnglish
}

func (m *DashboardModel) View() string {
	t := m.services.TranslationService.T
	var b strings.Builder

	stats := m.services.CredentialService.Stats(m.credentials)
	score := m.services.SecurityService.Analysis().CurrentScore

	b.WriteString(fmt.Sprintf("%s: %d │ %s: %d │ %s: %d │ %s: %d%%\n",
		t(service.KeyTotalCredentials), stats.Total,
		t(service.KeyVerifiedCredentials), stats.Verified,
		t(service.KeyPending), stats.Pending,
		t(service.KeySecurityScore), score,
	))
	if m.unread > 0 {
		b.WriteString(unreadStyle.Render(fmt.Sprintf("%s: %d unread", t(service.KeyNotifications), m.unread)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(t(service.KeyMyCredentials))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(t(service.KeyManageCredentials)))
	b.WriteString("\n\n")

	for i, c := range m.credentials {
		line := fmt.Sprintf("%s %-28s %-22s %s", cursor(i == m.idx), fitText(c.Title, 28), fitText(c.Issuer, 22), statusBadge(c.Status))
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.signingOut {
		b.WriteString("\n[Signing out...]\n")
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage(
		strings.ToUpper(t(service.KeyAppTitle)),
		strings.TrimRight(b.String(), "\n"),
		"enter: details │ c: copy ID │ x: export │ n: notices │ a: assistant │ s: security │ p: profile │ g: language │ o: sign out │ v: version",
	)
}
