package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-id-wallet/models"
)

// IDGenerator produces unique, time-ordered identifiers.
type IDGenerator interface {
	Generate() string
}

// ClientOTPService issues and checks one-time passwords for the login flow.
// It talks to the remote backend when one is configured and otherwise (or,
// when fallback is enabled, after a failed send) issues offline sessions whose
// code is the configured mock code.
type ClientOTPService interface {
	// SendOTP issues a challenge for a normalised 10-digit phone. The phone is
	// sent to the backend with the configured country prefix. The returned
	// session's Mode tells which path issued it.
	SendOTP(ctx context.Context, phone string) (models.OTPSession, error)

	// VerifyOTP checks code against sessionID. Offline sessions are checked
	// against the session store and stay valid for the process lifetime, so
	// stepping back in the wizard can verify again. Any rejection is
	// [ErrInvalidOTP].
	VerifyOTP(ctx context.Context, sessionID, code string) error
}

// ClientAuthService owns the wallet's sign-in state.
type ClientAuthService interface {
	// StartLogin returns a fresh phone → OTP → PIN wizard.
	StartLogin() *LoginFlow

	// Signup validates req, then persists the profile, its document and
	// snapshot, downloads profile.json, stores the PIN digest and signs the
	// user in. The steps are not atomic: a failure leaves earlier writes.
	Signup(ctx context.Context, req models.SignupRequest) (models.UserProfile, error)

	// VerifyPIN compares pin with the digest stored for phone. A phone without
	// a stored digest never matches.
	VerifyPIN(ctx context.Context, phone, pin string) error

	// RestoreSession reads the persisted auth state. A missing or undecodable
	// state is reported as signed out.
	RestoreSession(ctx context.Context) models.AuthState

	// SignOut clears the persisted auth state and tears the session down.
	SignOut(ctx context.Context) error
}

// CredentialService serves the read-only credential fixtures.
type CredentialService interface {
	Credentials() []models.Credential
	Find(credentialID string) (models.Credential, bool)
	Stats(creds []models.Credential) models.CredentialStats
	DocumentDetails(kind models.CredentialKind) models.DocumentDetails
}

// ExportService serialises credentials and writes them to the export directory.
type ExportService interface {
	Formats() []models.ExportFormatInfo

	// Export returns the path written. An empty filename selects
	// credentials-<YYYY-MM-DD>.<ext>. Zero credentials fail with
	// [ErrNothingToExport] before anything is serialised.
	Export(ctx context.Context, creds []models.Credential, format models.ExportFormat, filename string) (string, error)
}

// NotificationService manages the government notice list persisted in the
// key-value store.
type NotificationService interface {
	// Load reads the persisted list, seeding the samples on first use.
	Load(ctx context.Context) ([]models.Notification, error)
	Notifications(ctx context.Context) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
	UnreadCount(ctx context.Context) (int, error)
	ByCategory(ctx context.Context, category models.NotificationCategory) ([]models.Notification, error)
	ByPriority(ctx context.Context, priority models.Priority) ([]models.Notification, error)
	Delete(ctx context.Context, id string) error

	// Reset drops the in-memory cache. The persisted list is kept.
	Reset()
}

// SecurityService scores the wallet's security posture from a fixed factor table.
type SecurityService interface {
	Analysis() models.SecurityAnalysis
	ScoreBreakdown() models.ScoreBreakdown
	RecommendationsForPerfectScore() []string
	SecurityTips() []string
}

// AssistantService answers document questions from a canned FAQ.
type AssistantService interface {
	FindAnswer(question string) string

	// Ask answers question and records it at the head of the history.
	Ask(question string) models.AssistantQuery
	History() []models.AssistantQuery
	ClearHistory()
	QuickQuestions() []string
	CategoryQuestions(category string) []models.FAQ
}

// TranslationService resolves UI strings in the persisted language.
type TranslationService interface {
	Language(ctx context.Context) models.Language
	SetLanguage(ctx context.Context, lang models.Language) error

	// T translates key in the current language, falling back to English and
	// then to the key itself.
	T(key string) string
}

// ProfileService shows and imports the signed-in user's profile.
type ProfileService interface {
	// Profile requires an authenticated state. It reads the profile by phone
	// and falls back to the stored snapshot when the lookup fails.
	Profile(ctx context.Context) (models.UserProfile, error)

	// ImportProfile stores raw as the profile snapshot. raw must be a JSON object.
	ImportProfile(ctx context.Context, raw []byte) (models.UserProfile, error)

	// ImportProfileFile reads path and passes its content to ImportProfile.
	ImportProfileFile(ctx context.Context, path string) (models.UserProfile, error)
}

// Clock returns the current time. Services take one so tests can pin it.
type Clock func() time.Time
