package service

import (
	"fmt"

	sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"
)

// Engine performs authenticated encryption of opaque payloads under a key derived
// from the current master key.
//
// Every call derives its own key and, for encryption, draws its own nonce, so an
// Engine is safe for concurrent use. The only shared state is the guarded master
// key in the KeySource.
type Engine struct {
	keys        KeySource
	nonces      NonceGenerator
	aeadManager AEADManager
}

// NewEngine creates an Engine reading the master key from keys and nonces from nonces.
func NewEngine(keys KeySource, nonces NonceGenerator, aeadManager AEADManager) *Engine {
	return &Engine{
		keys:        keys,
		nonces:      nonces,
		aeadManager: aeadManager,
	}
}

// Encrypt seals plaintext with AES-256-GCM under a fresh nonce and empty AAD.
//
// Returns ErrMasterKeyNotSet, ErrRandomnessUnavailable or ErrEncryptionFailed.
// Failures are never retried.
func (e *Engine) Encrypt(plaintext []byte) (nonce, ciphertext []byte, err error) {
	nonce, err = e.nonces.Generate()
	if err != nil {
		return nil, nil, err
	}

	err = e.keys.WithKey(func(masterKey []byte) error {
		key := DeriveKey(masterKey)
		defer sealingDomain.Zero(key)

		aead, err := e.aeadManager.CreateCipher(key)
		if err != nil {
			return fmt.Errorf("%w: %v", sealingDomain.ErrEncryptionFailed, err)
		}

		ciphertext, err = aead.Seal(NewSingleUseNonce(nonce), plaintext, nil)
		if err != nil {
			return fmt.Errorf("%w: %v", sealingDomain.ErrEncryptionFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return nonce, ciphertext, nil
}

// Decrypt opens ciphertext (tag appended) sealed under nonce.
//
// The master key must be the one used at encryption time. Any failure to open
// (wrong key, tampering, truncation) is reported as ErrDecryptionFailed with no
// further detail. ErrMasterKeyNotSet is returned before any key is set up.
func (e *Engine) Decrypt(nonce, ciphertext []byte) ([]byte, error) {
	var plaintext []byte

	err := e.keys.WithKey(func(masterKey []byte) error {
		key := DeriveKey(masterKey)
		defer sealingDomain.Zero(key)

		aead, err := e.aeadManager.CreateCipher(key)
		if err != nil {
			return sealingDomain.ErrDecryptionFailed
		}

		plaintext, err = aead.Open(NewSingleUseNonce(nonce), ciphertext, nil)
		if err != nil {
			return sealingDomain.ErrDecryptionFailed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}

// SealToken encrypts plaintext and frames the result as a token.
func (e *Engine) SealToken(plaintext []byte) (string, error) {
	nonce, ciphertext, err := e.Encrypt(plaintext)
	if err != nil {
		return "", err
	}
	return sealingDomain.EncodeToken(nonce, ciphertext), nil
}

// OpenToken unframes a token and decrypts it.
// Returns ErrMalformedToken for undecodable input and ErrDecryptionFailed if the
// frame does not authenticate.
func (e *Engine) OpenToken(token string) ([]byte, error) {
	nonce, ciphertext, err := sealingDomain.DecodeToken(token)
	if err != nil {
		return nil, err
	}
	return e.Decrypt(nonce, ciphertext)
}
