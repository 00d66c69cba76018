package service

import (
	"context"

	"github.com/MKhiriev/go-id-wallet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// OTPService is the backend side of the OTP contract served by otpd.
type OTPService interface {
	SendOTP(ctx context.Context, req models.SendOTPRequest) (models.SendOTPResponse, error)
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
