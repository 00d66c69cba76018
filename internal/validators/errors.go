package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPhone    = errors.New("please enter a valid 10-digit phone number")
	ErrInvalidOTP      = errors.New("please enter a 6-digit OTP")
	ErrInvalidPIN      = errors.New("PIN must be 4 digits")
	ErrInvalidPassword = errors.New("password must be at least 6 characters")
)
