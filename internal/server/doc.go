// Package server runs the otpd HTTP server: startup, signal handling and
// graceful shutdown.
package server
