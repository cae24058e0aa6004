// Package validation provides custom validation rules for configuration and CLI input.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/sealfield/internal/errors"
)

// WrapValidationError wraps validation errors as ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// KeyURI validates that a string looks like a KMS key URI ("scheme://...").
var KeyURI = validation.NewStringRuleWithError(
	func(s string) bool {
		scheme, rest, ok := strings.Cut(s, "://")
		return ok && scheme != "" && rest != "" && !strings.ContainsAny(scheme, " \t\n")
	},
	validation.NewError("validation_key_uri", "must be a key URI such as base64key://... or hashivault://..."),
)
