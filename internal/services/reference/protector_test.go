package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProtector_RoundTrip(t *testing.T) {
	p := NewProtector("test-secret")

	tests := []struct {
		name      string
		plaintext string
	}{
		{"gateway reference", "cs_test_a1B2c3D4e5F6"},
		{"single char", "x"},
		{"unicode", "réf-œ-561"},
		{"long reference", "ref_0123456789012345678901234567890123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted := p.Protect(tt.plaintext)
			assert.NotEqual(t, tt.plaintext, encrypted)
			assert.Equal(t, tt.plaintext, p.Unprotect(encrypted))
		})
	}
}

func TestProtector_EmptyString(t *testing.T) {
	p := NewProtector("test-secret")

	assert.Equal(t, "", p.Protect(""))
	assert.Equal(t, "", p.Unprotect(""))
	assert.Equal(t, "", p.Fingerprint(""))
}

func TestProtector_UnprotectLegacyPlaintext(t *testing.T) {
	p := NewProtector("test-secret")

	// Values stored before encryption was introduced must come back unchanged.
	legacy := "plain-unencrypted-reference"
	assert.Equal(t, legacy, p.Unprotect(legacy))
}

func TestProtector_UnprotectWrongKey(t *testing.T) {
	encrypted := NewProtector("key-one").Protect("ref_123")

	// A different key cannot decrypt; the input comes back unchanged rather
	// than failing the caller.
	assert.Equal(t, encrypted, NewProtector("key-two").Unprotect(encrypted))
}

func TestProtector_NonDeterministicCiphertext(t *testing.T) {
	p := NewProtector("test-secret")

	// Fresh nonce per call: identical plaintexts encrypt differently.
	assert.NotEqual(t, p.Protect("ref_123"), p.Protect("ref_123"))
}

func TestProtector_Fingerprint(t *testing.T) {
	p := NewProtector("test-secret")

	a := p.Fingerprint("ref_123")
	b := p.Fingerprint("ref_123")
	c := p.Fingerprint("ref_124")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, "ref_123", a)
}
