// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the OTP
// backend handlers and by the wallet when it interprets backend answers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording identical on
// both sides of the wire.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or a field has the wrong shape.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidPhone is returned when the phone is not in +<country><number> form.
	MsgInvalidPhone = "invalid phone number"

	// MsgInvalidOTP is returned when the code does not match the session.
	MsgInvalidOTP = "Invalid OTP"

	// MsgSessionNotFound is returned when the session is unknown or its TTL
	// has elapsed.
	MsgSessionNotFound = "OTP session expired or not found"

	// MsgTooManyAttempts is returned once a session exceeds its attempt budget.
	// The session is discarded and a new code must be requested.
	MsgTooManyAttempts = "too many attempts"

	// MsgTokenCreationFailed is returned when a verified session cannot be
	// turned into a signed token.
	MsgTokenCreationFailed = "token creation failed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
