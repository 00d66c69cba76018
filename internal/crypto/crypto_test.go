package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPin_KnownVector(t *testing.T) {
	// sha256("1234")
	assert.Equal(t, "03ac674216f3e15c761ee1a5e255f067953623c8b388b4459e13f978d7c846f4", HashPin("1234"))
	assert.Len(t, HashPin(""), 64)
}

func TestComparePinHash(t *testing.T) {
	digest := HashPin("4321")

	assert.True(t, ComparePinHash("4321", digest))
	assert.True(t, ComparePinHash("4321", strings.ToUpper(digest)))
	assert.False(t, ComparePinHash("4322", digest))
	assert.False(t, ComparePinHash("4321", ""))
}

func TestPinHasher(t *testing.T) {
	h := NewPinHasher()
	assert.True(t, h.Compare("0000", h.Hash("0000")))
	assert.False(t, h.Compare("0001", h.Hash("0000")))
}

func TestCodeHasher_RoundTrip(t *testing.T) {
	h := NewCodeHasher(bcrypt.MinCost)

	digest, err := h.Hash("654321")
	require.NoError(t, err)
	assert.NotEqual(t, "654321", digest)
	assert.True(t, h.Compare("654321", digest))
	assert.False(t, h.Compare("123456", digest))
	assert.False(t, h.Compare("654321", "not-a-digest"))
}

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := GenerateCode(6)
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}

	_, err := GenerateCode(0)
	assert.Error(t, err)
}
