package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// OTP
	ErrInvalidOTP          = errors.New("invalid OTP")
	ErrOTPSessionExpired   = errors.New("OTP session expired or not found")
	ErrTooManyAttempts     = errors.New("too many attempts")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// auth / session
	ErrWrongPIN           = errors.New("incorrect PIN")
	ErrStepNotAllowed     = errors.New("action is not allowed at this login step")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidProfileJSON = errors.New("invalid JSON file")

	// export
	ErrNothingToExport   = errors.New("no credentials available to export")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrExportSerializing = errors.New("failed to serialize credentials")

	ErrNotificationNotFound = errors.New("notification was not found")
	ErrUnsupportedLanguage  = errors.New("unsupported language")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
