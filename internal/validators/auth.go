package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-id-wallet/models"
)

const (
	FieldPhone    = "phone"
	FieldPassword = "password"
	FieldPIN      = "pin"
	FieldOTP      = "otp"

	phoneLength       = 10
	otpLength         = 6
	pinLength         = 4
	minPasswordLength = 6
)

// NormalizePhone strips every non-digit and requires exactly ten digits
// to remain.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() != phoneLength {
		return "", ErrInvalidPhone
	}
	return b.String(), nil
}

// ValidateOTP requires exactly six ASCII digits.
func ValidateOTP(code string) error {
	if !digits(code, otpLength) {
		return ErrInvalidOTP
	}
	return nil
}

// ValidatePIN requires exactly four ASCII digits.
func ValidatePIN(pin string) error {
	if !digits(pin, pinLength) {
		return ErrInvalidPIN
	}
	return nil
}

// ValidatePassword requires at least six characters.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrInvalidPassword
	}
	return nil
}

func digits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// SignupValidator validates [models.SignupRequest] values.
type SignupValidator struct{}

func NewSignupValidator() Validator {
	return &SignupValidator{}
}

// Validate checks phone, password and PIN in that order, or only the named
// fields when any are given.
func (v *SignupValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var req models.SignupRequest
	switch value := obj.(type) {
	case models.SignupRequest:
		req = value
	case *models.SignupRequest:
		if value == nil {
			return fmt.Errorf("%w: nil request", ErrUnsupportedType)
		}
		req = *value
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	if len(fields) == 0 {
		fields = []string{FieldPhone, FieldPassword, FieldPIN}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldPhone:
			_, err = NormalizePhone(req.Phone)
		case FieldPassword:
			err = ValidatePassword(req.Password)
		case FieldPIN:
			err = ValidatePIN(req.PIN)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
