// Package http implements the otpd HTTP transport.
//
// It wires the chi router for the OTP endpoints and the middleware that runs
// before every request reaches the service layer: panic recovery, trace IDs,
// and access logging.
package http
