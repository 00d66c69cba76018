package service

import (
	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/crypto"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/internal/utils"
)

type Services struct {
	OTPService     OTPService
	AppInfoService AppInfoService
}

func NewServices(storages *store.OTPStorages, cfg *config.OTPServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.Version, logger)
	if err != nil {
		return nil, err
	}

	otpSvc := NewOTPService(storages.Sessions, crypto.NewCodeHasher(crypto.DefaultCodeCost), utils.NewUUIDGenerator(), cfg, logger)

	return &Services{OTPService: otpSvc, AppInfoService: appInfo}, nil
}
