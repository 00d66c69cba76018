package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubClipboard(t *testing.T, err error) *string {
	t.Helper()

	var copied string
	prev := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return err
	}
	t.Cleanup(func() { writeClipboard = prev })
	return &copied
}

// ── Dashboard ────────────────────────────────────────────────────────────────

func TestDashboardModel_InitLoadsState(t *testing.T) {
	svcs, _ := newSignedInServices(t)
	m := NewDashboardModel(context.Background(), svcs, logger.Nop())

	msg := execCmd(t, m.Init())
	m.Update(msg)

	assert.Len(t, m.credentials, 4)
	assert.Equal(t, 4, m.unread)

	view := m.View()
	assert.Contains(t, view, "Total Credentials: 4")
	assert.Contains(t, view, "Security Score: 95%")
	assert.Contains(t, view, "Bank KYC Certificate")
}

func TestDashboardModel_CopyCredentialID(t *testing.T) {
	copied := stubClipboard(t, nil)
	svcs, _ := newSignedInServices(t)
	m := NewDashboardModel(context.Background(), svcs, logger.Nop())
	m.Init()

	m.Update(keyPress("down"))
	_, cmd := m.Update(keyPress("c"))
	msg := execCmd(t, cmd)

	assert.Equal(t, "did:bharat:e5f6g7h8", *copied)
	m.Update(msg)
	assert.Equal(t, "Credential ID copied", m.status)
}

func TestDashboardModel_CopyWithoutClipboard(t *testing.T) {
	stubClipboard(t, assert.AnError)
	svcs, _ := newSignedInServices(t)
	m := NewDashboardModel(context.Background(), svcs, logger.Nop())
	m.Init()

	_, cmd := m.Update(keyPress("c"))
	m.Update(execCmd(t, cmd))

	assert.Equal(t, "Clipboard is not available", m.errMsg)
}

func TestDashboardModel_OpenDetails(t *testing.T) {
	svcs, _ := newSignedInServices(t)
	m := NewDashboardModel(context.Background(), svcs, logger.Nop())
	m.Init()

	m.Update(keyPress("down"))
	m.Update(keyPress("down"))
	_, cmd := m.Update(keyPress("enter"))

	nav, ok := execCmd(t, cmd).(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageDetail, nav.Page)
	assert.Equal(t, "did:bharat:i9j0k1l2", nav.Payload.(showCredentialMsg).credential.CredentialID)
}

func TestDashboardModel_Hotkeys(t *testing.T) {
	svcs, _ := newSignedInServices(t)
	m := NewDashboardModel(context.Background(), svcs, logger.Nop())
	m.Init()

	tests := map[string]string{
		"x": pageExport,
		"n": pageNotifications,
		"a": pageAssistant,
		"s": pageSecurity,
		"p": pageProfile,
	}
	for k, page := range tests {
		_, cmd := m.Update(keyPress(k))
		assert.Equal(t, NavigateTo{Page: page}, execCmd(t, cmd), k)
	}
}

func TestDashboardModel_ToggleLanguage(t *testing.T) {
	ctx := context.Background()
	svcs, _ := newSignedInServices(t)
	m := NewDashboardModel(ctx, svcs, logger.Nop())
	m.Init()

	_, cmd := m.Update(keyPress("g"))
	msg := execCmd(t, cmd).(languageChangedMsg)
	require.NoError(t, msg.err)
	assert.Equal(t, models.LanguageHindi, msg.lang)
	assert.Equal(t, models.LanguageHindi, svcs.TranslationService.Language(ctx))

	m.Update(msg)
	assert.Equal(t, svcs.TranslationService.T(service.KeySwitchedToHindi), m.status)
	assert.Contains(t, m.View(), "भारत-आईडी शील्ड")

	_, cmd = m.Update(keyPress("g"))
	assert.Equal(t, models.LanguageEnglish, execCmd(t, cmd).(languageChangedMsg).lang)
}

func TestDashboardModel_SignOut(t *testing.T) {
	ctx := context.Background()
	svcs, _ := newSignedInServices(t)
	m := NewDashboardModel(ctx, svcs, logger.Nop())
	m.Init()

	_, cmd := m.Update(keyPress("o"))
	assert.True(t, m.signingOut)

	_, ignored := m.Update(keyPress("x"))
	assert.Nil(t, ignored)

	assert.Equal(t, SignedOutMsg{}, execCmd(t, cmd))
	assert.False(t, svcs.AuthService.RestoreSession(ctx).IsAuthenticated)
}

// ── Detail ───────────────────────────────────────────────────────────────────

func TestDetailModel_View(t *testing.T) {
	svcs, _ := newTestServices(t)
	m := NewDetailModel(svcs.CredentialService, svcs.TranslationService)
	m.Init()
	assert.Contains(t, m.View(), errNoCredentialSelected.Error())

	cred, ok := svcs.CredentialService.Find("did:bharat:e5f6g7h8")
	require.True(t, ok)
	m.Update(showCredentialMsg{credential: cred})

	view := m.View()
	assert.Contains(t, view, "DEG/2023/CSE/1247")
	assert.Contains(t, view, "Never")
	assert.Contains(t, view, "Education")

	_, cmd := m.Update(keyPress("esc"))
	assert.Equal(t, NavigateTo{Page: pageDashboard}, execCmd(t, cmd))
}

// ── Export ───────────────────────────────────────────────────────────────────

func TestExportModel_ExportsSelectedFormat(t *testing.T) {
	svcs, dir := newTestServices(t)
	m := NewExportModel(context.Background(), svcs.ExportService, svcs.CredentialService)
	m.Init()

	m.Update(keyPress("down"))
	m.Update(keyPress("tab"))
	for _, r := range "wallet" {
		m.Update(keyPress(string(r)))
	}
	_, cmd := m.Update(keyPress("enter"))
	msg := execCmd(t, cmd).(exportDoneMsg)
	require.NoError(t, msg.err)

	m.Update(msg)
	assert.Equal(t, filepath.Join(dir, "wallet.csv"), m.path)
	assert.Contains(t, m.View(), "Saved to ")

	raw, err := os.ReadFile(m.path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "Title,Issuer,Type,Status"))
}

func TestExportModel_DefaultFileName(t *testing.T) {
	svcs, _ := newTestServices(t)
	m := NewExportModel(context.Background(), svcs.ExportService, svcs.CredentialService)
	m.Init()

	_, cmd := m.Update(keyPress("enter"))
	msg := execCmd(t, cmd).(exportDoneMsg)
	require.NoError(t, msg.err)
	assert.Regexp(t, `credentials-\d{4}-\d{2}-\d{2}\.json$`, msg.path)
}
