package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-id-wallet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProfileRepository persists identity profiles. Phone is unique.
type ProfileRepository interface {
	// SaveUser inserts or replaces the profile with the same ID.
	// A phone held by a different ID yields ErrPhoneAlreadyExists.
	SaveUser(ctx context.Context, profile models.UserProfile) error
	// GetUserByPhone returns ErrProfileNotFound when no profile matches.
	GetUserByPhone(ctx context.Context, phone string) (models.UserProfile, error)
}

// DocumentRepository persists opaque JSON documents by key.
type DocumentRepository interface {
	SaveDocument(ctx context.Context, id string, data json.RawMessage) error
	GetDocument(ctx context.Context, id string) (models.Document, error)
}

// PinRepository persists one PIN digest per phone.
type PinRepository interface {
	SavePinHash(ctx context.Context, phone, pinHash string) error
	// GetPinHash returns ErrPinNotFound when the phone has no PIN.
	GetPinHash(ctx context.Context, phone string) (string, error)
}

// KeyValueStore is the flat string store for session flags, snapshots and
// preferences.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SessionStore is process-lifetime storage for offline OTP sessions.
type SessionStore interface {
	Put(key, value string)
	Get(key string) (string, bool)
	Delete(key string)
}

// Exporter writes user-facing downloads.
type Exporter interface {
	// DownloadJSON writes v as indented JSON and returns the written path.
	DownloadJSON(filename string, v any) (string, error)
	// WriteFile writes raw content and returns the written path.
	WriteFile(filename string, content []byte) (string, error)
}

// OTPSessionStore keeps otpd challenges until they expire.
type OTPSessionStore interface {
	Save(ctx context.Context, record models.OTPRecord, ttl time.Duration) error
	// Get returns ErrOTPSessionNotFound for unknown or expired sessions.
	Get(ctx context.Context, sessionID string) (models.OTPRecord, error)
	// IncrementAttempts counts a verify attempt and returns the new total.
	IncrementAttempts(ctx context.Context, sessionID string) (int64, error)
	Delete(ctx context.Context, sessionID string) error
}

// Sweeper removes expired entries from a store without native expiry.
type Sweeper interface {
	Sweep(ctx context.Context) int
}
