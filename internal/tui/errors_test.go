package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", fmt.Errorf("signup: %w", validators.ErrInvalidPhone), validators.ErrInvalidPhone.Error()},
		{"wrong otp", fmt.Errorf("%w: bad code", service.ErrInvalidOTP), "Invalid OTP"},
		{"attempts", fmt.Errorf("%w: %w", service.ErrInvalidOTP, service.ErrTooManyAttempts), "Too many attempts. Request a new OTP."},
		{"expired", fmt.Errorf("%w: %w", service.ErrInvalidOTP, service.ErrOTPSessionExpired), "OTP expired. Request a new OTP."},
		{"pin", service.ErrWrongPIN, "Incorrect PIN"},
		{"duplicate", fmt.Errorf("save profile: %w", store.ErrPhoneAlreadyExists), "This phone number belongs to another account"},
		{"network", errors.New("send otp: dial tcp 127.0.0.1:8081: connect: connection refused"), "No network or the OTP server is unavailable"},
		{"other", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestViewHelpers(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ab", fitText("abcdefgh", 2))

	assert.Equal(t, 0, moveIndex(0, -1, 3))
	assert.Equal(t, 2, moveIndex(2, 1, 3))
	assert.Equal(t, 0, moveIndex(5, 0, 0))

	page := renderPage("TITLE", "", "enter: ok")
	assert.Contains(t, page, "  -\n")
	assert.Contains(t, page, "ctrl+c: quit")
}
