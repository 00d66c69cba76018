package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrPhoneAlreadyExists is returned when a profile is saved under a new
	// ID with a phone that another profile already holds.
	ErrPhoneAlreadyExists = errors.New("phone already exists")

	// ErrProfileNotFound is returned when no profile matches the phone.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrDocumentNotFound is returned when no document matches the ID.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrPinNotFound is returned when no PIN digest is stored for the phone.
	ErrPinNotFound = errors.New("pin was not found")

	// ErrKeyNotFound is returned when a key-value entry does not exist.
	ErrKeyNotFound = errors.New("key was not found")

	// ErrOTPSessionNotFound is returned when an OTP session is unknown or
	// has expired.
	ErrOTPSessionNotFound = errors.New("otp session was not found")

	// ErrInvalidFileName is returned when an export name has no usable base
	// name.
	ErrInvalidFileName = errors.New("invalid file name")
)

// Low-level operation errors, wrapped around the driver error.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrWritingFile is returned when an export cannot be written.
	ErrWritingFile = errors.New("failed to write file")

	// ErrRedis is returned when a Redis command fails.
	ErrRedis = errors.New("redis command failed")
)
