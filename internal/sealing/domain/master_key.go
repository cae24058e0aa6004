package domain

import (
	"context"
	"encoding/base64"
	"strings"
)

// KMSKeeper is the subset of *secrets.Keeper used to wrap and unwrap master keys.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// ParseMasterKey decodes a standard base64 master key as found in configuration.
//
// Surrounding whitespace is ignored. Returns ErrInvalidMasterKeyBase64 if decoding
// fails and ErrInvalidKeyLength if the decoded key is empty.
func ParseMasterKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, ErrInvalidMasterKeyBase64
	}
	if len(key) == 0 {
		return nil, ErrInvalidKeyLength
	}
	return key, nil
}

// EncodeMasterKey renders a master key in the format accepted by ParseMasterKey.
func EncodeMasterKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}
