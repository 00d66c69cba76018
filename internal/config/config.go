// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// wallet client and the development OTP daemon. It is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds wallet-level settings such as the UI language and the code
	// accepted by the offline OTP path.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local SQLite store, the export
	// directory and the optional Redis session backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address, OTP lifetime and token settings for otpd.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds outbound OTP gateway settings used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds wallet-level configuration values.
type App struct {
	// Language is the initial UI language tag ("en" or "hi") used until the
	// user stores a preference.
	// Env: APP_LANGUAGE
	Language string `env:"LANGUAGE"`

	// MockOTPCode is the fixed code accepted for offline OTP sessions.
	// Env: APP_MOCK_OTP_CODE
	MockOTPCode string `env:"MOCK_OTP_CODE"`

	// PhonePrefix is prepended to the 10-digit phone number before it is
	// sent to the OTP backend.
	// Env: APP_PHONE_PREFIX
	PhonePrefix string `env:"PHONE_PREFIX"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the export directory settings.
	Files Files `envPrefix:"FILES_"`

	// Redis holds the optional otpd session backend settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite file path (e.g. "bharat-id.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for exported documents.
type Files struct {
	// ExportDir is the directory where profile and credential exports are
	// written.
	// Env: STORAGE_FILES_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR"`
}

// Redis holds connection settings for the otpd session store.
type Redis struct {
	// URL is a redis:// connection URL. Empty selects the in-memory store.
	// Env: STORAGE_REDIS_URL
	URL string `env:"URL"`
}

// Server holds otpd settings.
type Server struct {
	// HTTPAddress is the TCP address otpd listens on, in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// OTPTTL is how long an issued code stays verifiable.
	// Env: SERVER_OTP_TTL
	OTPTTL time.Duration `env:"OTP_TTL"`

	// TokenSignKey is the HMAC key for the verification token returned on
	// a successful verify.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of the verification token.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of the verification token.
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Adapter holds outbound OTP gateway settings.
type Adapter struct {
	// OTPBaseURL is the OTP backend base URL. Empty means the client runs
	// entirely on the offline OTP path.
	// Env: ADAPTER_OTP_BASE_URL
	OTPBaseURL string `env:"OTP_BASE_URL"`

	// RequestTimeout bounds a single outbound gateway call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DisableFallback turns off the downgrade to the offline path when the
	// backend cannot be reached on send.
	// Env: ADAPTER_DISABLE_FALLBACK
	DisableFallback bool `env:"DISABLE_FALLBACK"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override non-zero
// fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
