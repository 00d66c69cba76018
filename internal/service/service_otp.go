package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/crypto"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/internal/utils"
	"github.com/MKhiriev/go-id-wallet/internal/validators"
	"github.com/MKhiriev/go-id-wallet/models"
)

const (
	otpCodeLength = 6
	// MaxVerifyAttempts is how many verify calls a session accepts. The
	// session is discarded on the first call past it.
	MaxVerifyAttempts = 5

	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// otpService is the concrete implementation of OTPService used by otpd.
//
// Codes are never stored in plain form: the session record keeps a bcrypt
// digest, and the plain code only reaches the log, which stands in for SMS
// delivery.
type otpService struct {
	sessions store.OTPSessionStore
	hasher   crypto.CodeHasher
	ids      IDGenerator
	generate func(length int) (string, error)

	ttl           time.Duration
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	now    Clock
	logger *logger.Logger
}

func NewOTPService(sessions store.OTPSessionStore, hasher crypto.CodeHasher, ids IDGenerator, cfg *config.OTPServerConfig, logger *logger.Logger) OTPService {
	return &otpService{
		sessions:      sessions,
		hasher:        hasher,
		ids:           ids,
		generate:      crypto.GenerateCode,
		ttl:           cfg.OTPTTL,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// validInternationalPhone accepts "+" followed by 10 to 15 digits.
func validInternationalPhone(phone string) bool {
	if len(phone) < 1+minPhoneDigits || len(phone) > 1+maxPhoneDigits || phone[0] != '+' {
		return false
	}
	for i := 1; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}

// SendOTP issues a session for req.Phone. Only the "sms" channel (or an
// empty one) is accepted.
func (s *otpService) SendOTP(ctx context.Context, req models.SendOTPRequest) (models.SendOTPResponse, error) {
	log := logger.FromContext(ctx)

	if !validInternationalPhone(req.Phone) {
		return models.SendOTPResponse{}, fmt.Errorf("%w: phone", ErrInvalidDataProvided)
	}
	if req.Channel != "" && req.Channel != models.ChannelSMS {
		return models.SendOTPResponse{}, fmt.Errorf("%w: channel %q", ErrInvalidDataProvided, req.Channel)
	}

	code, err := s.generate(otpCodeLength)
	if err != nil {
		return models.SendOTPResponse{}, err
	}
	digest, err := s.hasher.Hash(code)
	if err != nil {
		return models.SendOTPResponse{}, err
	}

	record := models.OTPRecord{
		SessionID: s.ids.Generate(),
		Phone:     req.Phone,
		CodeHash:  digest,
		IssuedAt:  s.now().UTC(),
	}
	if err = s.sessions.Save(ctx, record, s.ttl); err != nil {
		log.Err(err).Str("func", "*otpService.SendOTP").Msg("saving otp session failed")
		return models.SendOTPResponse{}, fmt.Errorf("save otp session: %w", err)
	}

	log.Info().
		Str("session_id", record.SessionID).
		Str("phone", req.Phone).
		Str("code", code).
		Dur("ttl", s.ttl).
		Msg("otp issued")

	return models.SendOTPResponse{SessionID: record.SessionID}, nil
}

// VerifyOTP checks req.OTP and, on success, consumes the session and issues
// a token whose subject is the verified phone.
func (s *otpService) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if req.SessionID == "" || validators.ValidateOTP(req.OTP) != nil {
		return models.Token{}, ErrInvalidDataProvided
	}

	record, err := s.sessions.Get(ctx, req.SessionID)
	if errors.Is(err, store.ErrOTPSessionNotFound) {
		return models.Token{}, ErrOTPSessionExpired
	}
	if err != nil {
		return models.Token{}, fmt.Errorf("read otp session: %w", err)
	}

	attempts, err := s.sessions.IncrementAttempts(ctx, req.SessionID)
	if errors.Is(err, store.ErrOTPSessionNotFound) {
		return models.Token{}, ErrOTPSessionExpired
	}
	if err != nil {
		return models.Token{}, fmt.Errorf("count otp attempt: %w", err)
	}
	if attempts > MaxVerifyAttempts {
		if err = s.sessions.Delete(ctx, req.SessionID); err != nil {
			log.Err(err).Str("func", "*otpService.VerifyOTP").Msg("discarding exhausted session failed")
		}
		return models.Token{}, ErrTooManyAttempts
	}

	if !s.hasher.Compare(req.OTP, record.CodeHash) {
		log.Warn().Str("session_id", req.SessionID).Int64("attempt", attempts).Msg("otp mismatch")
		return models.Token{}, ErrInvalidOTP
	}

	if err = s.sessions.Delete(ctx, req.SessionID); err != nil {
		log.Err(err).Str("func", "*otpService.VerifyOTP").Msg("consuming otp session failed")
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, record.Phone, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("session_id", req.SessionID).Msg("otp verified")
	return token, nil
}
