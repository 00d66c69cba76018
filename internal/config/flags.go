package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-a otpd listen address in format [host]:[port]
//	-d database DSN
//	-e export directory
//	-r redis URL for otpd sessions
//	-otp-url OTP backend base URL (empty means offline)
//	-no-fallback disable offline fallback on send failure
//	-lang UI language (en, hi)
//	-c/-config json file path with configs
//	-token-sign-key otpd token signing key
//	-token-issuer otpd token issuer name
//	-token-duration otpd token duration (e.g., "15m")
//	-otp-ttl otpd code lifetime (e.g., "5m")
//	-request-timeout request timeout (e.g., "10s")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, exportDir, redisURL string
	var otpBaseURL, language, jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, otpTTL, requestTimeout time.Duration
	var noFallback bool

	fs := flag.NewFlagSet("bharat-id", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&exportDir, "e", "", "Export directory")
	fs.StringVar(&redisURL, "r", "", "Redis URL")
	fs.StringVar(&otpBaseURL, "otp-url", "", "OTP backend base URL")
	fs.BoolVar(&noFallback, "no-fallback", false, "Disable offline OTP fallback")
	fs.StringVar(&language, "lang", "", "UI language")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 15m)")
	fs.DurationVar(&otpTTL, "otp-ttl", 0, "OTP lifetime (e.g., 5m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Language: language,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{ExportDir: exportDir},
			Redis: Redis{URL: redisURL},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			OTPTTL:         otpTTL,
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
		},
		Adapter: Adapter{
			OTPBaseURL:      otpBaseURL,
			RequestTimeout:  requestTimeout,
			DisableFallback: noFallback,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address renders as the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
