package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCodeCost is the bcrypt cost used for OTP digests.
const DefaultCodeCost = bcrypt.DefaultCost

type bcryptCodeHasher struct {
	cost int
}

// NewCodeHasher constructs a bcrypt [CodeHasher]. A cost outside bcrypt's
// range falls back to bcrypt.DefaultCost.
func NewCodeHasher(cost int) CodeHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return bcryptCodeHasher{cost: cost}
}

func (h bcryptCodeHasher) Hash(code string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash otp code: %w", err)
	}
	return string(digest), nil
}

func (h bcryptCodeHasher) Compare(code, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(code)) == nil
}

// GenerateCode returns a uniformly random numeric code of the given length.
func GenerateCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid code length %d", length)
	}

	digits := make([]byte, length)
	ten := big.NewInt(10)
	for i := range digits {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("generate otp code: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
