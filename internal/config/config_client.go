package config

import (
	"fmt"
	"time"
)

// Defaults applied to unset client and otpd fields.
const (
	DefaultLanguage       = "en"
	DefaultMockOTPCode    = "123456"
	DefaultPhonePrefix    = "+91"
	DefaultDSN            = "bharat-id.db"
	DefaultExportDir      = "."
	DefaultRequestTimeout = 10 * time.Second
	DefaultServerAddress  = "localhost:8081"
	DefaultOTPTTL         = 5 * time.Minute
	DefaultTokenIssuer    = "otpd"
	DefaultTokenDuration  = 15 * time.Minute
)

// ClientApp holds wallet settings derived from the shared structured config.
type ClientApp struct {
	// Language is the initial UI language.
	Language string
	// MockOTPCode is the code accepted by offline OTP sessions.
	MockOTPCode string
	// PhonePrefix is the dialling prefix sent with every phone number.
	PhonePrefix string
	// Version is the running client version.
	Version string
}

// ClientAdapter holds OTP gateway settings used by the client.
type ClientAdapter struct {
	// OTPBaseURL is the backend base URL; empty selects offline mode.
	OTPBaseURL string
	// RequestTimeout is the timeout for a single gateway call.
	RequestTimeout time.Duration
	// FallbackEnabled allows a failed send to continue offline.
	FallbackEnabled bool
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DSN is the SQLite file path.
	DSN string
	// ExportDir is where downloads are written.
	ExportDir string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// OTPServerConfig is the otpd configuration assembled from [StructuredConfig].
type OTPServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	OTPTTL         time.Duration
	TokenSignKey   string
	TokenIssuer    string
	TokenDuration  time.Duration
	RedisURL       string
	Version        string
}

// GetClientConfig builds and validates the wallet config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg to a [ClientConfig], filling defaults for unset
// fields. The result is not validated.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Language:    orDefault(cfg.App.Language, DefaultLanguage),
			MockOTPCode: orDefault(cfg.App.MockOTPCode, DefaultMockOTPCode),
			PhonePrefix: orDefault(cfg.App.PhonePrefix, DefaultPhonePrefix),
			Version:     cfg.App.Version,
		},
		Adapter: ClientAdapter{
			OTPBaseURL:      cfg.Adapter.OTPBaseURL,
			RequestTimeout:  orDefault(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
			FallbackEnabled: !cfg.Adapter.DisableFallback,
		},
		Storage: ClientStorage{
			DSN:       orDefault(cfg.Storage.DB.DSN, DefaultDSN),
			ExportDir: orDefault(cfg.Storage.Files.ExportDir, DefaultExportDir),
		},
	}
}

// GetOTPServerConfig builds and validates the otpd config view.
func GetOTPServerConfig() (*OTPServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewOTPServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewOTPServerConfig maps cfg to an [OTPServerConfig], filling defaults for
// unset fields. The result is not validated.
func NewOTPServerConfig(cfg *StructuredConfig) *OTPServerConfig {
	return &OTPServerConfig{
		HTTPAddress:    orDefault(cfg.Server.HTTPAddress, DefaultServerAddress),
		RequestTimeout: orDefault(cfg.Server.RequestTimeout, DefaultRequestTimeout),
		OTPTTL:         orDefault(cfg.Server.OTPTTL, DefaultOTPTTL),
		TokenSignKey:   cfg.Server.TokenSignKey,
		TokenIssuer:    orDefault(cfg.Server.TokenIssuer, DefaultTokenIssuer),
		TokenDuration:  orDefault(cfg.Server.TokenDuration, DefaultTokenDuration),
		RedisURL:       cfg.Storage.Redis.URL,
		Version:        cfg.App.Version,
	}
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
