package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSealer(t *testing.T, pass string, salt []byte) *Sealer {
	t.Helper()
	s, err := NewSealer([]byte(pass), salt)
	require.NoError(t, err)
	return s
}

func TestDeriveKey_DeterministicPerSalt(t *testing.T) {
	salt1 := []byte("0123456789abcdef")
	salt2 := []byte("fedcba9876543210")

	k1 := DeriveKey([]byte("pw"), salt1)
	assert.Len(t, k1, 32)
	assert.Equal(t, k1, DeriveKey([]byte("pw"), salt1))
	assert.NotEqual(t, k1, DeriveKey([]byte("pw"), salt2))
	assert.NotEqual(t, k1, DeriveKey([]byte("other"), salt1))
}

func TestNewSalt(t *testing.T) {
	a, err := NewSalt()
	require.NoError(t, err)
	b, err := NewSalt()
	require.NoError(t, err)
	assert.Len(t, a, saltSize)
	assert.NotEqual(t, a, b)
}

func TestSealer_RoundTrip(t *testing.T) {
	s := newTestSealer(t, "pw", []byte("0123456789abcdef"))

	sealed, err := s.Seal("eyJhbGciOi.access")
	require.NoError(t, err)
	assert.True(t, IsSealed(sealed))
	assert.NotContains(t, sealed, "access")

	again, err := s.Seal("eyJhbGciOi.access")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "fresh nonce per call")

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOi.access", plain)
}

func TestSealer_OpenErrors(t *testing.T) {
	salt := []byte("0123456789abcdef")
	s := newTestSealer(t, "pw", salt)
	sealed, err := s.Seal("secret")
	require.NoError(t, err)

	_, err = newTestSealer(t, "wrong", salt).Open(sealed)
	assert.ErrorIs(t, err, ErrOpen)

	_, err = s.Open("secret")
	assert.ErrorIs(t, err, ErrNotSealed)

	_, err = s.Open(sealedPrefix + "!!!")
	assert.ErrorIs(t, err, ErrOpen)

	_, err = s.Open(sealedPrefix + "AAAA")
	assert.ErrorIs(t, err, ErrOpen)

	tampered := sealed[:len(sealed)-2] + strings.Repeat("A", 2)
	if tampered != sealed {
		_, err = s.Open(tampered)
		assert.ErrorIs(t, err, ErrOpen)
	}
}
