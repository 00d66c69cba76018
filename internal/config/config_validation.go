// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

var supportedLanguages = map[string]struct{}{"en": {}, "hi": {}}

// validate checks source-independent invariants of the merged
// [StructuredConfig]. Role-specific checks live on the derived views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.ExportDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.OTPBaseURL != "" {
		u, err := url.Parse(cfg.Adapter.OTPBaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: bad otp base url %q", ErrInvalidAdapterConfigs, cfg.Adapter.OTPBaseURL)
		}
	}

	if _, ok := supportedLanguages[cfg.App.Language]; !ok {
		return fmt.Errorf("%w: unsupported language %q", ErrInvalidAppConfigs, cfg.App.Language)
	}
	if !isDigits(cfg.App.MockOTPCode, 6) {
		return fmt.Errorf("%w: mock otp code must be 6 digits", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *OTPServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidServerConfigs)
	}
	if cfg.OTPTTL <= 0 || cfg.TokenDuration <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.RedisURL != "" && !strings.HasPrefix(cfg.RedisURL, "redis://") && !strings.HasPrefix(cfg.RedisURL, "rediss://") {
		return fmt.Errorf("%w: bad redis url", ErrInvalidStorageConfigs)
	}

	return nil
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
