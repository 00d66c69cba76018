// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

type sha256PinHasher struct{}

// NewPinHasher constructs the SHA-256 [PinHasher].
func NewPinHasher() PinHasher {
	return sha256PinHasher{}
}

func (sha256PinHasher) Hash(pin string) string {
	return HashPin(pin)
}

func (sha256PinHasher) Compare(pin, digest string) bool {
	return ComparePinHash(pin, digest)
}

// HashPin returns the lowercase hex SHA-256 digest of pin's UTF-8 bytes.
func HashPin(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// ComparePinHash compares HashPin(pin) with digest in constant time.
// Digests are compared case-insensitively.
func ComparePinHash(pin, digest string) bool {
	want := HashPin(pin)
	return subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToLower(digest))) == 1
}
