// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-id-wallet/internal/adapter"
	"github.com/MKhiriev/go-id-wallet/internal/app"
)

// mapVerifyError turns a backend verify failure into a service error. Every
// rejection is ErrInvalidOTP carrying the server text, or the generic
// "Invalid OTP" when the body is empty; the known texts also wrap their
// specific cause. A transport failure is returned wrapped as is.
func mapVerifyError(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *adapter.StatusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("verify otp: %w", err)
	}

	if statusErr.Body == "" {
		return fmt.Errorf("%w: %s", ErrInvalidOTP, app.MsgInvalidOTP)
	}

	switch statusErr.Message() {
	case app.MsgTooManyAttempts:
		return fmt.Errorf("%w: %w", ErrInvalidOTP, ErrTooManyAttempts)
	case app.MsgSessionNotFound:
		return fmt.Errorf("%w: %w", ErrInvalidOTP, ErrOTPSessionExpired)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidOTP, statusErr.Message())
	}
}
