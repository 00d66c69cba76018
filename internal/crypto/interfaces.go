package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PinHasher turns a 4-digit PIN into the digest kept in the local store.
type PinHasher interface {
	// Hash returns the lowercase hex SHA-256 digest of pin.
	Hash(pin string) string
	// Compare reports whether pin hashes to digest. Comparison time does not
	// depend on where the digests differ.
	Compare(pin, digest string) bool
}

// CodeHasher protects OTP codes held by the backend.
type CodeHasher interface {
	Hash(code string) (string, error)
	Compare(code, digest string) bool
}
