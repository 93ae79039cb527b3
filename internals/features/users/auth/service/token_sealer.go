package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
)

const sealedPrefix = "sealed:"

var errSealedToken = errors.New("sealed token tidak bisa dibuka")

// TokenSealer mengenkripsi token sebelum ditulis ke durable storage.
type TokenSealer struct {
	key [32]byte
}

func NewTokenSealer(secret string) *TokenSealer {
	if strings.TrimSpace(secret) == "" {
		return nil
	}
	return &TokenSealer{key: sha256.Sum256([]byte(secret))}
}

func (s *TokenSealer) Seal(plain string) (string, error) {
	if s == nil || plain == "" {
		return plain, nil
	}
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", err
	}
	box := secretbox.Seal(nonce[:], []byte(plain), &nonce, &s.key)
	return sealedPrefix + base64.RawURLEncoding.EncodeToString(box), nil
}

// Open menerima nilai sealed maupun plaintext lama.
func (s *TokenSealer) Open(stored string) (string, error) {
	if !strings.HasPrefix(stored, sealedPrefix) {
		return stored, nil
	}
	if s == nil {
		return "", errSealedToken
	}
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(stored, sealedPrefix))
	if err != nil || len(raw) < 24 {
		return "", errSealedToken
	}
	var nonce [24]byte
	copy(nonce[:], raw[:24])
	plain, ok := secretbox.Open(nil, raw[24:], &nonce, &s.key)
	if !ok {
		return "", errSealedToken
	}
	return string(plain), nil
}
