package service

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"
)

func newTestNonce(t *testing.T) []byte {
	t.Helper()
	nonce := make([]byte, sealingDomain.NonceSize)
	_, err := rand.Read(nonce)
	require.NoError(t, err)
	return nonce
}

func TestNewAESGCM(t *testing.T) {
	t.Run("valid 256-bit key", func(t *testing.T) {
		cipher, err := NewAESGCM(make([]byte, 32))
		assert.NoError(t, err)
		assert.NotNil(t, cipher)
	})

	t.Run("invalid key size - AES-128", func(t *testing.T) {
		cipher, err := NewAESGCM(make([]byte, 16))
		assert.Error(t, err)
		assert.Nil(t, cipher)
	})

	t.Run("invalid key size - too large", func(t *testing.T) {
		cipher, err := NewAESGCM(make([]byte, 64))
		assert.Error(t, err)
		assert.Nil(t, cipher)
	})
}

func TestAESGCMCipher_SealOpen(t *testing.T) {
	cipher, err := NewAESGCM(DeriveKey([]byte("master")))
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		nonce := newTestNonce(t)
		plaintext := []byte("Hello, World!")

		ciphertext, err := cipher.Seal(NewSingleUseNonce(nonce), plaintext, nil)
		require.NoError(t, err)
		assert.Len(t, ciphertext, len(plaintext)+sealingDomain.TagSize)
		assert.NotEqual(t, plaintext, ciphertext[:len(plaintext)])

		decrypted, err := cipher.Open(NewSingleUseNonce(nonce), ciphertext, nil)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("empty plaintext", func(t *testing.T) {
		nonce := newTestNonce(t)
		ciphertext, err := cipher.Seal(NewSingleUseNonce(nonce), []byte{}, nil)
		require.NoError(t, err)
		assert.Len(t, ciphertext, sealingDomain.TagSize)

		decrypted, err := cipher.Open(NewSingleUseNonce(nonce), ciphertext, nil)
		require.NoError(t, err)
		assert.Empty(t, decrypted)
	})

	t.Run("consumed nonce sequence", func(t *testing.T) {
		seq := NewSingleUseNonce(newTestNonce(t))
		_, err := cipher.Seal(seq, []byte("first"), nil)
		require.NoError(t, err)

		_, err = cipher.Seal(seq, []byte("second"), nil)
		assert.ErrorIs(t, err, sealingDomain.ErrNonceExhausted)
	})

	t.Run("wrong nonce size", func(t *testing.T) {
		_, err := cipher.Seal(NewSingleUseNonce(make([]byte, 8)), []byte("data"), nil)
		assert.Error(t, err)

		_, err = cipher.Open(NewSingleUseNonce(make([]byte, 8)), make([]byte, 32), nil)
		assert.Error(t, err)
	})

	t.Run("ciphertext shorter than tag", func(t *testing.T) {
		_, err := cipher.Open(NewSingleUseNonce(newTestNonce(t)), make([]byte, sealingDomain.TagSize-1), nil)
		assert.Error(t, err)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		nonce := newTestNonce(t)
		ciphertext, err := cipher.Seal(NewSingleUseNonce(nonce), []byte("secret"), nil)
		require.NoError(t, err)

		tampered := bytes.Clone(ciphertext)
		tampered[0] ^= 0x01
		_, err = cipher.Open(NewSingleUseNonce(nonce), tampered, nil)
		assert.Error(t, err)
	})

	t.Run("mismatched AAD", func(t *testing.T) {
		nonce := newTestNonce(t)
		ciphertext, err := cipher.Seal(NewSingleUseNonce(nonce), []byte("secret"), []byte("a"))
		require.NoError(t, err)

		_, err = cipher.Open(NewSingleUseNonce(nonce), ciphertext, nil)
		assert.Error(t, err)
	})
}
