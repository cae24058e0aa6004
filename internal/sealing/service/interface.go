// Package service implements the sealing engine: the guarded master key store,
// per-operation key derivation, nonce generation and the AES-256-GCM transform.
package service

import (
	"context"

	sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
// The nonce is drawn from a NonceSequence so each value is consumed exactly once.
type AEAD interface {
	// Seal encrypts plaintext and returns ciphertext with the tag appended.
	Seal(nonces NonceSequence, plaintext, aad []byte) ([]byte, error)

	// Open verifies and decrypts ciphertext with the tag appended.
	Open(nonces NonceSequence, ciphertext, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance bound to a derived key.
	CreateCipher(key []byte) (AEAD, error)
}

// NonceSequence hands out nonces for a single call to an AEAD primitive.
type NonceSequence interface {
	// Advance returns the next nonce or ErrNonceExhausted.
	Advance() ([]byte, error)
}

// NonceGenerator produces fresh nonces for encryption.
type NonceGenerator interface {
	// Generate returns NonceSize fresh random bytes or ErrRandomnessUnavailable.
	Generate() ([]byte, error)
}

// KeySource provides scoped access to the current master key.
type KeySource interface {
	// WithKey calls fn with the current master key while holding the store's read lock.
	// fn must not retain the slice.
	WithKey(fn func(masterKey []byte) error) error
}

// KMSService opens KMS keepers used to wrap and unwrap master keys.
type KMSService interface {
	// OpenKeeper opens a keeper for the given key URI.
	// Returns an error if the KMS provider URI is invalid or connection fails.
	OpenKeeper(ctx context.Context, keyURI string) (sealingDomain.KMSKeeper, error)
}
