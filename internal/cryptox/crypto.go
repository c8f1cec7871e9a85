// Package cryptox seals short secrets for storage on disk.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	sealedPrefix = "enc:v1:"
	nonceSize    = 12
	saltSize     = 16
)

var (
	ErrNotSealed = errors.New("value is not sealed")
	ErrOpen      = errors.New("cannot open sealed value")
)

// NewSalt returns random bytes for DeriveKey.
func NewSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey stretches passphrase into a 32-byte AES key.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, 32)
}

// Sealer encrypts strings with AES-GCM. Sealed values carry a version
// prefix so IsSealed can tell them apart from plain ones.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer derives a key from passphrase and salt. The derived key is
// wiped once the cipher holds it.
func NewSealer(passphrase, salt []byte) (*Sealer, error) {
	key := DeriveKey(passphrase, salt)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCMWithNonceSize(block, nonceSize)
	if err != nil {
		return nil, err
	}
	return &Sealer{aead: aead}, nil
}

func IsSealed(value string) bool {
	return strings.HasPrefix(value, sealedPrefix)
}

func (s *Sealer) Seal(plain string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	out := s.aead.Seal(nonce, nonce, []byte(plain), nil)
	return sealedPrefix + base64.RawStdEncoding.EncodeToString(out), nil
}

// Open reverses Seal. A wrong key or a tampered value gives ErrOpen.
func (s *Sealer) Open(sealed string) (string, error) {
	if !IsSealed(sealed) {
		return "", ErrNotSealed
	}
	raw, err := base64.RawStdEncoding.DecodeString(strings.TrimPrefix(sealed, sealedPrefix))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpen, err)
	}
	if len(raw) < nonceSize {
		return "", fmt.Errorf("%w: short value", ErrOpen)
	}
	plain, err := s.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpen, err)
	}
	return string(plain), nil
}
