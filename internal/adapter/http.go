package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/utils"
	"github.com/MKhiriev/go-id-wallet/models"
)

const (
	sendOTPPath   = "/otp/send"
	verifyOTPPath = "/otp/verify"

	jsonContentType = "application/json"
)

type httpOTPAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPOTPAdapter constructs an HTTP/JSON implementation of [OTPAdapter].
// It normalises adapterCfg.OTPBaseURL and applies adapterCfg.RequestTimeout
// to every request.
//
// Returns [ErrEmptyBaseURL] if no address is configured, or an error if the
// address cannot be parsed as a URL.
func NewHTTPOTPAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (OTPAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.OTPBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP backend address: %w", err)
	}

	return &httpOTPAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendOTP implements [OTPAdapter]. It POSTs {phone, channel:"sms"} to
// /otp/send and decodes {sessionId} from the answer as JSON whatever
// Content-Type the backend declares.
func (h *httpOTPAdapter) SendOTP(ctx context.Context, phone string) (string, error) {
	var result models.SendOTPResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.SendOTPRequest{Phone: phone, Channel: models.ChannelSMS}).
		SetResult(&result).
		ForceContentType(jsonContentType).
		Post(sendOTPPath)
	if err != nil {
		return "", fmt.Errorf("send otp request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.SessionID == "" {
		return "", ErrEmptySessionID
	}

	h.logger.Debug().Str("func", "httpOTPAdapter.SendOTP").Str("session_id", result.SessionID).Msg("otp sent")
	return result.SessionID, nil
}

// VerifyOTP implements [OTPAdapter]. It POSTs {sessionId, otp} to
// /otp/verify. On success the bearer token from the Authorization header,
// if any, is kept for [OTPAdapter.Token].
func (h *httpOTPAdapter) VerifyOTP(ctx context.Context, sessionID, otp string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.VerifyOTPRequest{SessionID: sessionID, OTP: otp}).
		Post(verifyOTPPath)
	if err != nil {
		return fmt.Errorf("verify otp request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	header := resp.Header().Get("Authorization")
	if header == "" {
		return nil
	}
	token, err := utils.ParseBearerToken(header)
	if err != nil {
		// the token is optional, a malformed one does not void the verification
		h.logger.Warn().Err(err).Str("func", "httpOTPAdapter.VerifyOTP").Msg("ignoring malformed authorization header")
		return nil
	}
	h.setToken(token)

	return nil
}

// Token implements [OTPAdapter].
func (h *httpOTPAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpOTPAdapter) setToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}
