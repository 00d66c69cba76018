// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/internal/validators"
)

var (
	errNoServices           = errors.New("client services are not provided")
	errNoCredentialSelected = errors.New("no credential selected")
)

// humanizeError turns a service error into a short line for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, validators.ErrInvalidPhone),
		errors.Is(err, validators.ErrInvalidOTP),
		errors.Is(err, validators.ErrInvalidPIN),
		errors.Is(err, validators.ErrInvalidPassword):
		return firstLine(err)
	case errors.Is(err, service.ErrTooManyAttempts):
		return "Too many attempts. Request a new OTP."
	case errors.Is(err, service.ErrOTPSessionExpired):
		return "OTP expired. Request a new OTP."
	case errors.Is(err, service.ErrInvalidOTP):
		return "Invalid OTP"
	case errors.Is(err, service.ErrWrongPIN):
		return "Incorrect PIN"
	case errors.Is(err, store.ErrPhoneAlreadyExists):
		return "This phone number belongs to another account"
	case errors.Is(err, service.ErrNothingToExport):
		return "No credentials available to export"
	case errors.Is(err, service.ErrInvalidProfileJSON):
		return "Invalid JSON file"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Please sign in again"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the OTP server is unavailable"
	}

	return err.Error()
}

// firstLine drops the wrapping context a validator error may carry.
func firstLine(err error) string {
	for _, target := range []error{
		validators.ErrInvalidPhone,
		validators.ErrInvalidOTP,
		validators.ErrInvalidPIN,
		validators.ErrInvalidPassword,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}
