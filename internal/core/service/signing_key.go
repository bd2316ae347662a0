package service

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// SigningKeySize matches the HMAC-SHA-512 block output.
const SigningKeySize = 64

const signingKeyInfo = "societies-server session token HS512"

// SigningKey is the symmetric key shared read-only by every token operation.
type SigningKey []byte

// NewSigningKey derives a key from secret with HKDF-SHA-512. An empty secret
// yields random bytes, so tokens die with the process that issued them.
func NewSigningKey(secret string) (SigningKey, error) {
	key := make([]byte, SigningKeySize)

	var src io.Reader = rand.Reader
	if secret != "" {
		src = hkdf.New(sha512.New, []byte(secret), nil, []byte(signingKeyInfo))
	}

	if _, err := io.ReadFull(src, key); err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}
	return key, nil
}
