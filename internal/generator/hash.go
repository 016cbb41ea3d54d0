package generator

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// Hash детерминированный генератор: sha256 от URL, первые 16 байт в base64url, нижний регистр.
type Hash struct{}

// NewHash создаёт Hash.
func NewHash() Hash {
	return Hash{}
}

// Shorten возвращает код из 22 символов.
func (Hash) Shorten(_ context.Context, normalizedURL string) (string, error) {
	if err := checkURL(normalizedURL); err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(normalizedURL))
	return strings.ToLower(base64.RawURLEncoding.EncodeToString(sum[:16])), nil
}
