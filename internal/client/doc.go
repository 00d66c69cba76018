// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the wallet application runtime.
//
// It restores the persisted session, hands control to the terminal UI and
// releases local storage on exit.
package client
