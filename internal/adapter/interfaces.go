// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the wallet and the
// OTP backend.
//
// The primary abstraction is [OTPAdapter], which decouples the service layer
// from the wire protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPOTPAdapter]) that speaks the two-endpoint contract
// POST /otp/send and POST /otp/verify.
//
// Non-2xx responses are returned as [*StatusError], which unwraps to the
// sentinel values in errors.go (e.g. [ErrUnauthorized] for 401), so callers
// tell a rejection from a transport failure with [errors.As].
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// OTPAdapter sends and verifies one-time passwords through a remote backend.
// It knows nothing about the offline path; choosing between remote and mock
// delivery is the service layer's job.
type OTPAdapter interface {
	// SendOTP asks the backend to deliver a code to phone (already in
	// international form, e.g. "+919876543210") and returns the backend
	// session ID. A 2xx answer without a session ID is [ErrEmptySessionID].
	SendOTP(ctx context.Context, phone string) (string, error)

	// VerifyOTP checks otp against the backend session. Any 2xx answer means
	// the code was accepted. A non-2xx answer is a [*StatusError].
	VerifyOTP(ctx context.Context, sessionID, otp string) error

	// Token returns the verification token carried by the last accepted
	// VerifyOTP, or an empty string if the backend did not send one.
	Token() string
}
