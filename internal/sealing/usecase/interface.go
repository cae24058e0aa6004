// Package usecase provides the boundary adapters a serialization pipeline calls per
// sealed field: encode a value into a token and decode a token back into a value.
package usecase

import (
	"context"
)

// Engine seals and opens framed tokens. Implemented by service.Engine.
type Engine interface {
	// SealToken encrypts plaintext and frames it as a token.
	SealToken(plaintext []byte) (string, error)

	// OpenToken unframes and decrypts a token.
	OpenToken(token string) ([]byte, error)
}

// SealerUseCase defines the per-field codec hooks.
type SealerUseCase interface {
	// Seal JSON-encodes value, encrypts it under a fresh nonce and returns the token.
	// Two calls with the same value return different tokens.
	Seal(ctx context.Context, value any) (string, error)

	// Unseal opens token and JSON-decodes the plaintext into target, which must be a
	// non-nil pointer.
	Unseal(ctx context.Context, token string, target any) error

	// SealBytes encrypts raw bytes without a text encoding step.
	SealBytes(ctx context.Context, plaintext []byte) (string, error)

	// UnsealBytes opens a token produced by SealBytes.
	UnsealBytes(ctx context.Context, token string) ([]byte, error)
}
