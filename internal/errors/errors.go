// Package errors provides standardized errors that express intent rather than
// primitive-level details. Sealing-specific errors wrap these bases so callers
// can classify a failure with errors.Is without knowing the exact sentinel.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors that can be used across all modules.
var (
	// ErrInvalidInput indicates the caller supplied data that cannot be processed
	// (bad key material, malformed tokens, tampered ciphertext).
	ErrInvalidInput = errors.New("invalid input")

	// ErrPrecondition indicates an operation was attempted before required state was set up.
	ErrPrecondition = errors.New("failed precondition")

	// ErrInternal indicates an unexpected failure in an underlying primitive.
	ErrInternal = errors.New("internal error")
)

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
