package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-id-wallet/internal/adapter"
	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/mock"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// sequenceIDs hands out id-1, id-2, ...
type sequenceIDs struct {
	n int
}

func (s *sequenceIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

var testAppCfg = config.ClientApp{
	Language:    "en",
	MockOTPCode: "123456",
	PhonePrefix: "+91",
}

func newTestOTPSvc(otpAdapter adapter.OTPAdapter, fallback bool) (ClientOTPService, *store.MemorySessionStore) {
	sessions := store.NewMemorySessionStore()
	svc := NewClientOTPService(otpAdapter, sessions, &sequenceIDs{}, testAppCfg, config.ClientAdapter{FallbackEnabled: fallback}, logger.Nop())
	return svc, sessions
}

// ── mock mode ────────────────────────────────────────────────────────────────

func TestClientOTPService_MockMode_IssuesOfflineSession(t *testing.T) {
	svc, sessions := newTestOTPSvc(nil, true)

	session, err := svc.SendOTP(context.Background(), "9876543210")
	require.NoError(t, err)

	assert.Equal(t, "mock_id-1", session.SessionID)
	assert.Equal(t, models.OTPModeMock, session.Mode)

	code, ok := sessions.Get(store.MockOTPKey(session.SessionID))
	require.True(t, ok)
	assert.Equal(t, "123456", code)
}

func TestClientOTPService_MockMode_Verify(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestOTPSvc(nil, true)

	session, err := svc.SendOTP(ctx, "9876543210")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.VerifyOTP(ctx, session.SessionID, "654321"), ErrInvalidOTP)
	require.NoError(t, svc.VerifyOTP(ctx, session.SessionID, "123456"))
	// the offline session survives a successful verify
	require.NoError(t, svc.VerifyOTP(ctx, session.SessionID, "123456"))
}

func TestClientOTPService_MockMode_UnknownSession(t *testing.T) {
	svc, _ := newTestOTPSvc(nil, true)

	err := svc.VerifyOTP(context.Background(), "mock_missing", "123456")
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestClientOTPService_MockMode_TwoSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newTestOTPSvc(nil, true)

	first, err := svc.SendOTP(ctx, "9876543210")
	require.NoError(t, err)
	second, err := svc.SendOTP(ctx, "9876543210")
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
	require.NoError(t, svc.VerifyOTP(ctx, first.SessionID, "123456"))
	require.NoError(t, svc.VerifyOTP(ctx, second.SessionID, "123456"))

	// dropping one session leaves the other verifiable
	sessions.Delete(store.MockOTPKey(first.SessionID))
	assert.ErrorIs(t, svc.VerifyOTP(ctx, first.SessionID, "123456"), ErrInvalidOTP)
	require.NoError(t, svc.VerifyOTP(ctx, second.SessionID, "123456"))

	assert.ErrorIs(t, svc.VerifyOTP(ctx, "mock_id-99", "123456"), ErrInvalidOTP)
}

// ── remote mode ──────────────────────────────────────────────────────────────

func TestClientOTPService_Remote_SendUsesPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	otpAdapter := mock.NewMockOTPAdapter(ctrl)
	otpAdapter.EXPECT().SendOTP(ctx, "+919876543210").Return("srv-1", nil)

	svc, _ := newTestOTPSvc(otpAdapter, true)

	session, err := svc.SendOTP(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, models.OTPSession{SessionID: "srv-1", Mode: models.OTPModeRemote}, session)
}

func TestClientOTPService_Remote_VerifySuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	otpAdapter := mock.NewMockOTPAdapter(ctrl)
	otpAdapter.EXPECT().VerifyOTP(ctx, "srv-1", "123456").Return(nil)

	svc, _ := newTestOTPSvc(otpAdapter, true)
	require.NoError(t, svc.VerifyOTP(ctx, "srv-1", "123456"))
}

func TestClientOTPService_Remote_VerifyRejected(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantIs    []error
		wantMsg   string
		notWanted string
	}{
		{
			name:    "invalid code",
			err:     &adapter.StatusError{StatusCode: 401, Body: "Invalid OTP"},
			wantIs:  []error{ErrInvalidOTP},
			wantMsg: "Invalid OTP",
		},
		{
			name:   "too many attempts",
			err:    &adapter.StatusError{StatusCode: 429, Body: "too many attempts"},
			wantIs: []error{ErrInvalidOTP, ErrTooManyAttempts},
		},
		{
			name:   "session expired",
			err:    &adapter.StatusError{StatusCode: 404, Body: "OTP session expired or not found"},
			wantIs: []error{ErrInvalidOTP, ErrOTPSessionExpired},
		},
		{
			name:      "empty body uses generic text",
			err:       &adapter.StatusError{StatusCode: 400},
			wantIs:    []error{ErrInvalidOTP},
			wantMsg:   "Invalid OTP",
			notWanted: "Bad Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			otpAdapter := mock.NewMockOTPAdapter(ctrl)
			otpAdapter.EXPECT().VerifyOTP(gomock.Any(), "srv-1", "000000").Return(tt.err)

			svc, _ := newTestOTPSvc(otpAdapter, true)
			err := svc.VerifyOTP(context.Background(), "srv-1", "000000")

			require.Error(t, err)
			for _, want := range tt.wantIs {
				assert.ErrorIs(t, err, want)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			if tt.notWanted != "" {
				assert.NotContains(t, err.Error(), tt.notWanted)
			}
		})
	}
}

func TestClientOTPService_Remote_VerifyTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := errors.New("connection refused")

	otpAdapter := mock.NewMockOTPAdapter(ctrl)
	otpAdapter.EXPECT().VerifyOTP(gomock.Any(), "srv-1", "123456").Return(transport)

	svc, _ := newTestOTPSvc(otpAdapter, true)
	err := svc.VerifyOTP(context.Background(), "srv-1", "123456")

	assert.ErrorIs(t, err, transport)
	assert.NotErrorIs(t, err, ErrInvalidOTP)
}

// ── fallback ─────────────────────────────────────────────────────────────────

func TestClientOTPService_SendFailure_FallsBackToOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	otpAdapter := mock.NewMockOTPAdapter(ctrl)
	otpAdapter.EXPECT().SendOTP(ctx, "+919876543210").Return("", adapter.ErrServiceUnavailable)

	svc, _ := newTestOTPSvc(otpAdapter, true)

	session, err := svc.SendOTP(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, models.OTPModeFallback, session.Mode)
	assert.True(t, session.IsMock())

	// fallback sessions are verified locally, the adapter is not consulted
	require.NoError(t, svc.VerifyOTP(ctx, session.SessionID, "123456"))
}

func TestClientOTPService_SendFailure_NoFallback(t *testing.T) {
	ctrl := gomock.NewController(t)

	otpAdapter := mock.NewMockOTPAdapter(ctrl)
	otpAdapter.EXPECT().SendOTP(gomock.Any(), gomock.Any()).Return("", adapter.ErrServiceUnavailable)

	svc, sessions := newTestOTPSvc(otpAdapter, false)

	session, err := svc.SendOTP(context.Background(), "9876543210")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrServiceUnavailable)
	assert.Empty(t, session.SessionID)

	_, ok := sessions.Get(store.MockOTPKey("mock_id-1"))
	assert.False(t, ok)
}
