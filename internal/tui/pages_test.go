package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Signup ───────────────────────────────────────────────────────────────────

func fillSignup(m *SignupModel, req models.SignupRequest) {
	m.inputs[signupFirstName].SetValue(req.FirstName)
	m.inputs[signupLastName].SetValue(req.LastName)
	m.inputs[signupEmail].SetValue(req.Email)
	m.inputs[signupPhone].SetValue(req.Phone)
	m.inputs[signupPassword].SetValue(req.Password)
	m.inputs[signupPIN].SetValue(req.PIN)
}

func TestSignupModel_SubmitsFromLastField(t *testing.T) {
	svcs, _ := newTestServices(t)
	m := NewSignupModel(context.Background(), svcs.AuthService, svcs.TranslationService)
	m.Init()
	fillSignup(m, testSignup)

	_, cmd := m.Update(keyPress("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, signupLastName, m.focus)

	m.setFocus(signupPIN)
	_, cmd = m.Update(keyPress("enter"))
	msg := execCmd(t, cmd).(signupDoneMsg)
	require.NoError(t, msg.err)
	assert.Equal(t, "user:9876543210", msg.profile.ID)

	_, cmd = m.Update(msg)
	assert.Equal(t, AuthenticatedMsg{Phone: "9876543210"}, execCmd(t, cmd))
	assert.True(t, svcs.Session.IsAuthenticated())
}

func TestSignupModel_ShowsValidationError(t *testing.T) {
	svcs, _ := newTestServices(t)
	m := NewSignupModel(context.Background(), svcs.AuthService, svcs.TranslationService)
	m.Init()

	req := testSignup
	req.PIN = "12"
	fillSignup(m, req)
	m.setFocus(signupPIN)

	_, cmd := m.Update(keyPress("enter"))
	_, next := m.Update(execCmd(t, cmd))

	assert.Nil(t, next)
	assert.Equal(t, "PIN must be 4 digits", m.errMsg)
	assert.False(t, m.submitting)
}

// ── Notifications ────────────────────────────────────────────────────────────

func TestNotificationsModel_MarkReadAndFilter(t *testing.T) {
	svcs, _ := newSignedInServices(t)
	m := NewNotificationsModel(context.Background(), svcs.NotificationService)

	m.Update(execCmd(t, m.Init()))
	require.Len(t, m.items, 7)
	assert.Equal(t, 4, m.unread)
	assert.Contains(t, m.View(), "Unread: 4 │ Filter: all")

	_, cmd := m.Update(keyPress("enter"))
	m.Update(execCmd(t, cmd))
	assert.Equal(t, 3, m.unread)
	assert.True(t, m.items[0].IsRead)

	_, cmd = m.Update(keyPress("f"))
	m.Update(execCmd(t, cmd))
	require.Len(t, m.items, 2)
	assert.Equal(t, "not-001", m.items[0].ID)
	assert.Equal(t, "not-006", m.items[1].ID)

	_, cmd = m.Update(keyPress("m"))
	m.Update(execCmd(t, cmd))
	assert.Zero(t, m.unread)
}

func TestNotificationsModel_Delete(t *testing.T) {
	svcs, _ := newSignedInServices(t)
	m := NewNotificationsModel(context.Background(), svcs.NotificationService)
	m.Update(execCmd(t, m.Init()))

	m.Update(keyPress("down"))
	_, cmd := m.Update(keyPress("d"))
	m.Update(execCmd(t, cmd))

	require.Len(t, m.items, 6)
	for _, n := range m.items {
		assert.NotEqual(t, "not-002", n.ID)
	}
	assert.Equal(t, 1, m.idx)
}

// ── Assistant ────────────────────────────────────────────────────────────────

func TestAssistantModel_AskAndClear(t *testing.T) {
	svcs, _ := newTestServices(t)
	m := NewAssistantModel(svcs.AssistantService)
	m.Init()

	m.Update(keyPress("enter"))
	assert.Equal(t, "Type a question first", m.errMsg)

	m.Update(keyPress("tab"))
	first := svcs.AssistantService.QuickQuestions()[0]
	assert.Equal(t, first, m.input.Value())

	m.Update(keyPress("enter"))
	history := svcs.AssistantService.History()
	require.Len(t, history, 1)
	assert.Equal(t, first, history[0].Question)
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(), "Q: "+first)

	m.Update(keyPress("ctrl+l"))
	assert.Empty(t, svcs.AssistantService.History())
}

// ── Security ─────────────────────────────────────────────────────────────────

func TestSecurityModel_View(t *testing.T) {
	svcs, _ := newTestServices(t)
	m := NewSecurityModel(svcs.SecurityService, svcs.TranslationService)
	m.Init()

	view := m.View()
	assert.Contains(t, view, "Security Score: 95 / 100")
	assert.Contains(t, view, "Go to Security Settings → Enable 2FA")
	assert.NotContains(t, view, "  Tips\n")

	m.Update(keyPress("tab"))
	assert.Contains(t, m.View(), "  Tips\n")
}

// ── Profile ──────────────────────────────────────────────────────────────────

func TestProfileModel_LoadAndImport(t *testing.T) {
	svcs, dir := newSignedInServices(t)
	m := NewProfileModel(context.Background(), svcs.ProfileService, svcs.TranslationService)

	m.Update(execCmd(t, m.Init()))
	assert.Equal(t, "Rahul Sharma", m.profile.FullName())
	assert.Contains(t, m.View(), "rahul@example.com")

	path := filepath.Join(dir, "import.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"firstName":"Priya","lastName":"Patel","phone":"9123456780"}`), 0o600))

	m.Update(keyPress("i"))
	require.True(t, m.importing)
	m.path.SetValue(path)
	_, cmd := m.Update(keyPress("enter"))
	m.Update(execCmd(t, cmd))

	assert.Equal(t, "Priya Patel", m.profile.FullName())
	assert.Equal(t, "Profile imported", m.status)
}

func TestProfileModel_ImportRejectsInvalidJSON(t *testing.T) {
	svcs, dir := newSignedInServices(t)
	m := NewProfileModel(context.Background(), svcs.ProfileService, svcs.TranslationService)
	m.Update(execCmd(t, m.Init()))

	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2]`), 0o600))

	m.Update(keyPress("i"))
	m.path.SetValue(path)
	_, cmd := m.Update(keyPress("enter"))
	m.Update(execCmd(t, cmd))

	assert.Equal(t, "Invalid JSON file", m.errMsg)
	assert.Equal(t, "Rahul Sharma", m.profile.FullName())
}

func TestProfileModel_SignedOut(t *testing.T) {
	svcs, _ := newTestServices(t)
	m := NewProfileModel(context.Background(), svcs.ProfileService, svcs.TranslationService)

	m.Update(execCmd(t, m.Init()))

	assert.Equal(t, "Please sign in again", m.errMsg)
}
