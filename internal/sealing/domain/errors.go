package domain

import (
	stdErrors "errors"

	"github.com/allisson/sealfield/internal/errors"
)

// Sealing error definitions.
//
// Every error wraps one of the bases in internal/errors so callers can classify
// it coarsely (bad input, missing setup, primitive failure) or match the exact
// sentinel with errors.Is.
var (
	// ErrInvalidKeyLength indicates Setup was called with an empty master key.
	// The key store is left unchanged.
	ErrInvalidKeyLength = errors.Wrap(errors.ErrInvalidInput, "invalid key length")

	// ErrMasterKeyNotSet indicates a seal or unseal was attempted before any master key was set up.
	ErrMasterKeyNotSet = errors.Wrap(errors.ErrPrecondition, "master key not set")

	// ErrInvalidMasterKeyBase64 indicates a configured master key is not valid base64.
	ErrInvalidMasterKeyBase64 = errors.Wrap(errors.ErrInvalidInput, "invalid master key base64")

	// ErrRandomnessUnavailable indicates the secure random source could not supply nonce bytes.
	// The operation is aborted; there is no fallback source.
	ErrRandomnessUnavailable = errors.Wrap(errors.ErrInternal, "randomness unavailable")

	// ErrNonceExhausted indicates a single-use nonce sequence was advanced twice.
	ErrNonceExhausted = errors.Wrap(errors.ErrInternal, "nonce already consumed")

	// ErrEncryptionFailed indicates the AEAD primitive rejected the key or could not seal.
	// It is never retried, since a retry under the same nonce would reuse it.
	ErrEncryptionFailed = errors.Wrap(errors.ErrInternal, "encryption failed")

	// ErrMalformedToken indicates a token is not valid unpadded URL-safe base64
	// or is too short to contain a nonce.
	ErrMalformedToken = errors.Wrap(errors.ErrInvalidInput, "malformed token")

	// ErrDecryptionFailed indicates a token could not be opened.
	//
	// This error can occur due to:
	//   - Wrong master key
	//   - Ciphertext or nonce has been tampered with (authentication failure)
	//   - Truncated or corrupted token
	//
	// The specific cause is never disclosed so the error cannot serve as a
	// decryption oracle.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrSerializationFailed indicates a value could not be text-encoded before sealing.
	ErrSerializationFailed = errors.Wrap(errors.ErrInvalidInput, "serialization failed")

	// ErrDeserializationFailed indicates decrypted bytes do not parse into the target value.
	ErrDeserializationFailed = errors.Wrap(errors.ErrInvalidInput, "deserialization failed")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidKeyLength, "invalid_key_length"},
	{ErrMasterKeyNotSet, "master_key_not_set"},
	{ErrInvalidMasterKeyBase64, "invalid_master_key_base64"},
	{ErrRandomnessUnavailable, "randomness_unavailable"},
	{ErrNonceExhausted, "nonce_exhausted"},
	{ErrEncryptionFailed, "encryption_failed"},
	{ErrMalformedToken, "malformed_token"},
	{ErrDecryptionFailed, "decryption_failed"},
	{ErrSerializationFailed, "serialization_failed"},
	{ErrDeserializationFailed, "deserialization_failed"},
}

// ErrorKind names the sealing error err wraps, or returns "unknown". The detail
// attached to a wrapped sentinel, which may quote plaintext, is never included.
func ErrorKind(err error) string {
	for _, k := range errorKinds {
		if stdErrors.Is(err, k.err) {
			return k.kind
		}
	}
	return "unknown"
}
