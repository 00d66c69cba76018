package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the verification JWT otpd returns after a successful verify.
//
// The "sub" claim carries the verified phone number. SignedString holds the
// compact form that travels in the Authorization header.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	Phone        string `json:"-"`
}

// GetPhone returns the verified phone from the subject claim.
func (t *Token) GetPhone() (string, error) {
	phone, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting phone from token: %w", err)
	}
	if phone == "" {
		return "", fmt.Errorf("empty subject in token")
	}
	return phone, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
