package tui

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var testOptions = Options{
	BuildInfo:   models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"),
	MockOTPCode: "123456",
	PhonePrefix: "+91",
}

var testSignup = models.SignupRequest{
	FirstName: "Rahul",
	LastName:  "Sharma",
	Email:     "rahul@example.com",
	Phone:     "9876543210",
	Password:  "secret1",
	PIN:       "1234",
}

// newTestServices wires real services over a throwaway SQLite file in
// offline OTP mode.
func newTestServices(t *testing.T) (*service.ClientServices, string) {
	t.Helper()

	dir := t.TempDir()
	storages, err := store.NewClientStorages(config.ClientStorage{
		DSN:       filepath.Join(dir, "wallet.db"),
		ExportDir: dir,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	cfg := &config.ClientConfig{
		App: config.ClientApp{
			Language:    "en",
			MockOTPCode: testOptions.MockOTPCode,
			PhonePrefix: testOptions.PhonePrefix,
		},
		Storage: config.ClientStorage{ExportDir: dir},
	}
	return service.NewClientServices(storages, nil, cfg, logger.Nop()), dir
}

// newSignedInServices registers the test account and leaves it signed in.
func newSignedInServices(t *testing.T) (*service.ClientServices, string) {
	t.Helper()

	svcs, dir := newTestServices(t)
	_, err := svcs.AuthService.Signup(context.Background(), testSignup)
	require.NoError(t, err)
	return svcs, dir
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// execCmd runs cmd synchronously. It must not be a tick.
func execCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}
