package validation

import (
	"encoding/base64"
	"strings"

	validation "github.com/jellydator/validation"
)

// Base64 validates that a string is valid standard base64-encoded data.
// Surrounding whitespace is tolerated, as it is when master keys are parsed.
var Base64 = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_base64_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	_, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return validation.NewError("validation_base64", "must be valid base64-encoded data")
	}
	return nil
})
