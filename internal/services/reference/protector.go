// Package reference protects externally-visible payment references. Stored
// references are encrypted so a database leak does not expose them, and a
// deterministic fingerprint allows indexed lookup without decryption.
package reference

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"
)

// Protector encrypts and fingerprints payment references.
type Protector struct {
	key []byte
}

// NewProtector derives a 32-byte AES key from the configured secret, so the
// secret itself can be any length.
func NewProtector(secret string) *Protector {
	sum := sha256.Sum256([]byte(secret))
	return &Protector{key: sum[:]}
}

// Protect encrypts a plaintext reference with AES-256-GCM and returns
// base64(nonce||ciphertext). The empty string passes through unchanged.
func (p *Protector) Protect(plaintext string) string {
	if plaintext == "" {
		return ""
	}

	block, err := aes.NewCipher(p.key)
	if err != nil {
		return plaintext
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return plaintext
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return plaintext
	}

	sealed := aesgcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed)
}

// Unprotect decrypts a value produced by Protect. Anything that fails to
// decode or decrypt is returned unchanged, so legacy rows that predate
// encryption keep working.
func (p *Protector) Unprotect(encrypted string) string {
	if encrypted == "" {
		return ""
	}

	data, err := base64.RawURLEncoding.DecodeString(encrypted)
	if err != nil {
		return encrypted
	}

	block, err := aes.NewCipher(p.key)
	if err != nil {
		return encrypted
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return encrypted
	}

	ns := aesgcm.NonceSize()
	if len(data) < ns {
		return encrypted
	}
	plaintext, err := aesgcm.Open(nil, data[:ns], data[ns:], nil)
	if err != nil {
		return encrypted
	}
	return string(plaintext)
}

// Fingerprint returns a deterministic SHA-256 digest of a reference, used as
// a non-reversible index key.
func (p *Protector) Fingerprint(plaintext string) string {
	if plaintext == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(plaintext))
	return base64.StdEncoding.EncodeToString(sum[:])
}
