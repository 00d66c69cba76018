package models

import (
	"strings"
	"time"
)

// MockSessionPrefix marks session IDs issued by the offline OTP path.
const MockSessionPrefix = "mock_"

// OTPMode tells which path issued an OTP session.
type OTPMode string

const (
	// OTPModeRemote means the backend issued the session.
	OTPModeRemote OTPMode = "remote"
	// OTPModeMock means no backend is configured.
	OTPModeMock OTPMode = "mock"
	// OTPModeFallback means the backend failed and the offline path took over.
	OTPModeFallback OTPMode = "fallback"
)

// OTPSession is an issued, not yet verified, OTP challenge.
type OTPSession struct {
	SessionID string  `json:"sessionId"`
	Mode      OTPMode `json:"mode"`
}

// IsMock reports whether the session was issued offline.
func (s OTPSession) IsMock() bool {
	return s.Mode == OTPModeMock || s.Mode == OTPModeFallback || IsMockSessionID(s.SessionID)
}

// IsMockSessionID reports whether id was issued by the offline path.
func IsMockSessionID(id string) bool {
	return strings.HasPrefix(id, MockSessionPrefix)
}

// SendOTPRequest is the body of POST /otp/send.
type SendOTPRequest struct {
	Phone   string `json:"phone"`
	Channel string `json:"channel"`
}

// SendOTPResponse is the body returned by POST /otp/send.
type SendOTPResponse struct {
	SessionID string `json:"sessionId"`
}

// VerifyOTPRequest is the body of POST /otp/verify.
type VerifyOTPRequest struct {
	SessionID string `json:"sessionId"`
	OTP       string `json:"otp"`
}

// ChannelSMS is the only delivery channel the wallet requests.
const ChannelSMS = "sms"

// OTPRecord is a backend-side challenge. CodeHash is a bcrypt digest of
// the issued code; the plain code is never stored.
type OTPRecord struct {
	SessionID string    `json:"sessionId"`
	Phone     string    `json:"phone"`
	CodeHash  string    `json:"codeHash"`
	IssuedAt  time.Time `json:"issuedAt"`
}
