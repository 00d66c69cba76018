package service

import (
	"github.com/MKhiriev/go-id-wallet/internal/adapter"
	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/crypto"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/internal/utils"
	"github.com/MKhiriev/go-id-wallet/internal/validators"
)

type ClientServices struct {
	OTPService          ClientOTPService
	AuthService         ClientAuthService
	CredentialService   CredentialService
	ExportService       ExportService
	NotificationService NotificationService
	SecurityService     SecurityService
	AssistantService    AssistantService
	TranslationService  TranslationService
	ProfileService      ProfileService

	Session *Session
}

// NewClientServices wires every wallet service. A nil otpAdapter runs the
// OTP flow in mock mode.
func NewClientServices(storages *store.ClientStorages, otpAdapter adapter.OTPAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	ids := utils.NewUUIDGenerator()

	notificationSvc := NewNotificationService(storages.KV, logger)
	assistantSvc := NewAssistantService(nil, ids)
	session := NewSession(notificationSvc, assistantSvc, logger)

	otpSvc := NewClientOTPService(otpAdapter, storages.Sessions, ids, cfg.App, cfg.Adapter, logger)
	authSvc := NewClientAuthService(storages, otpSvc, crypto.NewPinHasher(), validators.NewSignupValidator(), session, logger)

	return &ClientServices{
		OTPService:          otpSvc,
		AuthService:         authSvc,
		CredentialService:   NewCredentialService(nil),
		ExportService:       NewExportService(storages.Exporter, logger),
		NotificationService: notificationSvc,
		SecurityService:     NewSecurityService(nil),
		AssistantService:    assistantSvc,
		TranslationService:  NewTranslationService(storages.KV, cfg.App.Language, logger),
		ProfileService:      NewProfileService(storages.Profiles, storages.KV, logger),
		Session:             session,
	}
}
