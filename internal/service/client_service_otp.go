package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/MKhiriev/go-id-wallet/internal/adapter"
	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/models"
)

type clientOTPService struct {
	// otpAdapter is nil in mock mode.
	otpAdapter adapter.OTPAdapter
	sessions   store.SessionStore
	ids        IDGenerator

	mockCode        string
	phonePrefix     string
	fallbackEnabled bool

	logger *logger.Logger
}

// NewClientOTPService constructs a [ClientOTPService]. A nil otpAdapter puts
// the service in mock mode.
func NewClientOTPService(
	otpAdapter adapter.OTPAdapter,
	sessions store.SessionStore,
	ids IDGenerator,
	appCfg config.ClientApp,
	adapterCfg config.ClientAdapter,
	logger *logger.Logger,
) ClientOTPService {
	return &clientOTPService{
		otpAdapter:      otpAdapter,
		sessions:        sessions,
		ids:             ids,
		mockCode:        appCfg.MockOTPCode,
		phonePrefix:     appCfg.PhonePrefix,
		fallbackEnabled: adapterCfg.FallbackEnabled,
		logger:          logger,
	}
}

func (s *clientOTPService) SendOTP(ctx context.Context, phone string) (models.OTPSession, error) {
	if s.otpAdapter == nil {
		return s.issueMock(models.OTPModeMock), nil
	}

	sessionID, err := s.otpAdapter.SendOTP(ctx, s.phonePrefix+phone)
	if err != nil {
		if !s.fallbackEnabled {
			s.logger.Err(err).Str("func", "*clientOTPService.SendOTP").Msg("otp backend send failed")
			return models.OTPSession{}, fmt.Errorf("send otp: %w", err)
		}

		s.logger.Warn().Err(err).Str("func", "*clientOTPService.SendOTP").Msg("otp backend send failed, falling back to offline code")
		return s.issueMock(models.OTPModeFallback), nil
	}

	return models.OTPSession{SessionID: sessionID, Mode: models.OTPModeRemote}, nil
}

func (s *clientOTPService) issueMock(mode models.OTPMode) models.OTPSession {
	sessionID := models.MockSessionPrefix + s.ids.Generate()
	s.sessions.Put(store.MockOTPKey(sessionID), s.mockCode)

	s.logger.Info().Str("session_id", sessionID).Str("mode", string(mode)).Msg("offline otp session issued")
	return models.OTPSession{SessionID: sessionID, Mode: mode}
}

func (s *clientOTPService) VerifyOTP(ctx context.Context, sessionID, code string) error {
	if s.otpAdapter == nil || models.IsMockSessionID(sessionID) {
		return s.verifyMock(sessionID, code)
	}

	if err := s.otpAdapter.VerifyOTP(ctx, sessionID, code); err != nil {
		s.logger.Err(err).Str("func", "*clientOTPService.VerifyOTP").Str("session_id", sessionID).Msg("otp verification failed")
		return mapVerifyError(err)
	}

	return nil
}

func (s *clientOTPService) verifyMock(sessionID, code string) error {
	stored, ok := s.sessions.Get(store.MockOTPKey(sessionID))
	if !ok || subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return ErrInvalidOTP
	}

	return nil
}
