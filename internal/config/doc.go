// Package config provides configuration loading, merging, and validation
// facilities for the wallet client and the otpd development backend.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the wallet and
// [GetOTPServerConfig] for otpd. Both apply defaults and validate the view
// they return.
package config
