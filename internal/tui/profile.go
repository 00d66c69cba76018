package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ProfileModel shows the signed-in profile and imports one from a JSON file.
type ProfileModel struct {
	ctx      context.Context
	profiles service.ProfileService
	i18n     service.TranslationService

	profile   models.UserProfile
	loading   bool
	importing bool
	path      textinput.Model
	status    string
	errMsg    string
}

func NewProfileModel(ctx context.Context, profiles service.ProfileService, i18n service.TranslationService) *ProfileModel {
	path := textinput.New()
	path.Placeholder = "/path/to/profile.json"
	path.CharLimit = 512
	path.Width = 50

	return &ProfileModel{ctx: ctx, profiles: profiles, i18n: i18n, path: path}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.importing = false
	m.path.Reset()
	m.path.Blur()
	m.status = ""
	m.errMsg = ""
	m.loading = true
	return m.cmdLoad()
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(profileLoadedMsg); ok {
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.profile = result.profile
		if result.imported {
			m.status = "Profile imported"
		}
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if m.importing {
		if isKey {
			switch {
			case key.Matches(keyMsg, keys.esc):
				m.importing = false
				m.path.Blur()
				return m, nil
			case key.Matches(keyMsg, keys.enter):
				path := strings.TrimSpace(m.path.Value())
				if path == "" || m.loading {
					return m, nil
				}
				m.importing = false
				m.path.Blur()
				m.loading = true
				return m, m.cmdImport(path)
			}
		}
		var cmd tea.Cmd
		m.path, cmd = m.path.Update(msg)
		return m, cmd
	}

	if isKey {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageDashboard, nil)
		case key.Matches(keyMsg, keys.importFile):
			m.importing = true
			m.status = ""
			m.path.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m *ProfileModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	profiles := m.profiles

	return func() tea.Msg {
		profile, err := profiles.Profile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m *ProfileModel) cmdImport(path string) tea.Cmd {
	ctx := m.ctx
	profiles := m.profiles

	return func() tea.Msg {
		profile, err := profiles.ImportProfileFile(ctx, path)
		return profileLoadedMsg{profile: profile, imported: true, err: err}
	}
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.profile.ID != "" || m.profile.Phone != "":
		b.WriteString(m.i18n.T(service.KeyVerifiedIdentity))
		b.WriteString("\n\n")
		writeField(&b, "Name", m.profile.FullName())
		writeField(&b, "Email", m.profile.Email)
		writeField(&b, "Phone", m.profile.Phone)
		writeField(&b, "User ID", m.profile.ID)
		if !m.profile.CreatedAt.IsZero() {
			writeField(&b, "Member since", m.profile.CreatedAt.Format("2 Jan 2006"))
		}
	}

	if m.importing {
		b.WriteString("\nImport from │ [")
		b.WriteString(m.path.View())
		b.WriteString("]\n")
	}

	renderStatus(&b, m.status, m.errMsg)

	hotKeys := "i: import JSON │ esc: back"
	if m.importing {
		hotKeys = "enter: import │ esc: cancel"
	}
	return renderPage(strings.ToUpper(m.i18n.T(service.KeyProfile)), strings.TrimRight(b.String(), "\n"), hotKeys)
}
