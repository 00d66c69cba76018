package tui

import "github.com/MKhiriev/go-id-wallet/models"

const (
	pageMenu          = "menu"
	pageLogin         = "login"
	pageSignup        = "signup"
	pageDashboard     = "dashboard"
	pageDetail        = "detail"
	pageExport        = "export"
	pageNotifications = "notifications"
	pageAssistant     = "assistant"
	pageSecurity      = "security"
	pageProfile       = "profile"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthenticatedMsg is sent once a login or signup signed the user in.
type AuthenticatedMsg struct {
	Phone string
}

// SignedOutMsg is sent once the auth state was cleared.
type SignedOutMsg struct {
	Err error
}

type loginStepMsg struct {
	err error
}

type signupDoneMsg struct {
	profile models.UserProfile
	err     error
}

// showCredentialMsg opens the detail page for a credential.
type showCredentialMsg struct {
	credential models.Credential
}

type exportDoneMsg struct {
	path string
	err  error
}

type notificationsLoadedMsg struct {
	items  []models.Notification
	unread int
	err    error
}

type profileLoadedMsg struct {
	profile  models.UserProfile
	imported bool
	err      error
}

type languageChangedMsg struct {
	lang models.Language
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
