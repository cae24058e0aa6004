package commands

import (
	"context"
	"encoding/json"
	"fmt"

	sealingUseCase "github.com/allisson/sealfield/internal/sealing/usecase"
)

// RunSeal seals value and writes the token followed by a newline.
//
// By default value must be a JSON document and is sealed the way a sealed
// field is. With raw set the bytes of value are sealed as-is.
func RunSeal(
	ctx context.Context,
	sealer sealingUseCase.SealerUseCase,
	streams IOTuple,
	value string,
	raw bool,
) error {
	value, err := readValue(streams.Reader, value)
	if err != nil {
		return fmt.Errorf("failed to read value: %w", err)
	}

	var token string
	if raw {
		token, err = sealer.SealBytes(ctx, []byte(value))
	} else {
		token, err = sealer.Seal(ctx, json.RawMessage(value))
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(streams.Writer, token)
	return err
}

// RunUnseal opens token and writes the recovered plaintext followed by a newline.
// With raw unset the plaintext is written as compact JSON.
func RunUnseal(
	ctx context.Context,
	sealer sealingUseCase.SealerUseCase,
	streams IOTuple,
	token string,
	raw bool,
) error {
	token, err := readValue(streams.Reader, token)
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}

	if raw {
		plaintext, err := sealer.UnsealBytes(ctx, token)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(streams.Writer, "%s\n", plaintext)
		return err
	}

	var value json.RawMessage
	if err := sealer.Unseal(ctx, token, &value); err != nil {
		return err
	}
	_, err = fmt.Fprintf(streams.Writer, "%s\n", value)
	return err
}
