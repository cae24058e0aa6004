package sealed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

var jsonNull = []byte("null")

// Value is a field whose JSON form is the sealed token of V.
type Value[T any] struct {
	V T
}

// Of wraps v for sealing.
func Of[T any](v T) Value[T] {
	return Value[T]{V: v}
}

// Get returns the wrapped value.
func (v Value[T]) Get() T {
	return v.V
}

// MarshalJSON implements json.Marshaler.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	token, err := defaultCodec.Seal(context.Background(), v.V)
	if err != nil {
		return nil, err
	}
	return json.Marshal(token)
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves v unchanged.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	token, err := decodeTokenString(data)
	if err != nil {
		return err
	}

	var out T
	if err := defaultCodec.Unseal(context.Background(), token, &out); err != nil {
		return err
	}
	v.V = out
	return nil
}

// Bytes is a byte field sealed without a JSON encoding step.
type Bytes []byte

// MarshalJSON implements json.Marshaler.
func (b Bytes) MarshalJSON() ([]byte, error) {
	token, err := defaultCodec.SealBytes(context.Background(), b)
	if err != nil {
		return nil, err
	}
	return json.Marshal(token)
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves b unchanged.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	token, err := decodeTokenString(data)
	if err != nil {
		return err
	}

	plaintext, err := defaultCodec.UnsealBytes(context.Background(), token)
	if err != nil {
		return err
	}
	*b = plaintext
	return nil
}

// decodeTokenString reads data as a JSON string holding a token.
func decodeTokenString(data []byte) (string, error) {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return "", fmt.Errorf("%w: expected string token", ErrMalformedToken)
	}
	return token, nil
}
