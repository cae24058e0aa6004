package service

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"
)

// AESGCMCipher implements the AEAD interface using AES-256-GCM
// (Advanced Encryption Standard with Galois/Counter Mode).
//
// Security properties:
//   - 256-bit key size
//   - 12-byte nonce, supplied by a single-use NonceSequence
//   - 16-byte authentication tag (appended to ciphertext)
//
// Thread safety:
//
//	The cipher instance is stateless and safe for concurrent use from multiple
//	goroutines. Nonces are owned by the caller's sequence, not by the cipher.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-256-GCM cipher instance.
//
// The key must be exactly 32 bytes (256 bits) for AES-256. Using a shorter or longer
// key will result in an error.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != sealingDomain.DerivedKeySize {
		return nil, errors.New("key must be exactly 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Seal encrypts plaintext with the next nonce from nonces. The returned
// ciphertext has the 16-byte tag appended.
func (a *AESGCMCipher) Seal(nonces NonceSequence, plaintext, aad []byte) ([]byte, error) {
	nonce, err := nonces.Advance()
	if err != nil {
		return nil, err
	}
	if len(nonce) != a.aead.NonceSize() {
		return nil, fmt.Errorf("nonce must be exactly %d bytes", a.aead.NonceSize())
	}

	return a.aead.Seal(nil, nonce, plaintext, aad), nil
}

// Open verifies the tag of ciphertext against the next nonce from nonces and
// the AAD, then returns the plaintext with the tag stripped.
//
// No plaintext is returned if verification fails.
func (a *AESGCMCipher) Open(nonces NonceSequence, ciphertext, aad []byte) ([]byte, error) {
	nonce, err := nonces.Advance()
	if err != nil {
		return nil, err
	}
	if len(nonce) != a.aead.NonceSize() {
		return nil, fmt.Errorf("nonce must be exactly %d bytes", a.aead.NonceSize())
	}
	if len(ciphertext) < a.aead.Overhead() {
		return nil, errors.New("ciphertext shorter than authentication tag")
	}

	plaintext, err := a.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}
