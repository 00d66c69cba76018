package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/internal/tui"
	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	calls    int
	signedIn bool
	err      error
}

func (f *fakeUI) Run(_ context.Context, signedIn bool) error {
	f.calls++
	f.signedIn = signedIn
	return f.err
}

type fakeCloser struct {
	closed int
	err    error
}

func (f *fakeCloser) Close() error {
	f.closed++
	return f.err
}

func newTestServices(t *testing.T) *service.ClientServices {
	t.Helper()

	dir := t.TempDir()
	storages, err := store.NewClientStorages(config.ClientStorage{DSN: filepath.Join(dir, "wallet.db"), ExportDir: dir}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	cfg := &config.ClientConfig{App: config.ClientApp{Language: "en", MockOTPCode: "123456", PhonePrefix: "+91"}}
	return service.NewClientServices(storages, nil, cfg, logger.Nop())
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, nil, logger.Nop())
	assert.ErrorIs(t, err, errNoServices)

	_, err = NewApp(newTestServices(t), nil, nil, logger.Nop())
	assert.ErrorIs(t, err, errNoUI)
}

func TestApp_Run_SignedOut(t *testing.T) {
	ui := &fakeUI{}
	closer := &fakeCloser{}
	app, err := NewApp(newTestServices(t), ui, closer, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, 1, ui.calls)
	assert.False(t, ui.signedIn)
	assert.Equal(t, 1, closer.closed)
}

func TestApp_Run_RestoresSession(t *testing.T) {
	ctx := context.Background()
	services := newTestServices(t)
	_, err := services.AuthService.Signup(ctx, models.SignupRequest{
		FirstName: "Rahul",
		LastName:  "Sharma",
		Email:     "rahul@example.com",
		Phone:     "9876543210",
		Password:  "secret1",
		PIN:       "1234",
	})
	require.NoError(t, err)
	services.Session.Teardown()

	ui := &fakeUI{}
	app, err := NewApp(services, ui, nil, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(ctx))
	assert.True(t, ui.signedIn)
	assert.True(t, services.Session.IsAuthenticated())
}

func TestApp_Run_Errors(t *testing.T) {
	tests := []struct {
		name     string
		uiErr    error
		closeErr error
		wantErr  bool
	}{
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: errors.New("no tty"), wantErr: true},
		{name: "close failure", closeErr: errors.New("database is locked"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closer := &fakeCloser{err: tt.closeErr}
			app, err := NewApp(newTestServices(t), &fakeUI{err: tt.uiErr}, closer, logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.uiErr != nil {
				assert.ErrorIs(t, err, tt.uiErr)
			}
			if tt.closeErr != nil {
				assert.ErrorIs(t, err, tt.closeErr)
			}
			assert.Equal(t, 1, closer.closed)
		})
	}
}
