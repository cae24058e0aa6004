package sealed

import "context"

var defaultCodec = mustDefaultCodec()

func mustDefaultCodec() *Codec {
	c, err := newCodec()
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the process-wide codec used by Value and Bytes.
func Default() *Codec {
	return defaultCodec
}

// Setup installs masterKey in the default codec. It may be called again to
// replace the key; until it succeeds every operation fails with
// ErrMasterKeyNotSet.
func Setup(masterKey []byte) error {
	return defaultCodec.SetKey(masterKey)
}

// Seal seals value with the default codec.
func Seal(ctx context.Context, value any) (string, error) {
	return defaultCodec.Seal(ctx, value)
}

// Unseal unseals token into target with the default codec.
func Unseal(ctx context.Context, token string, target any) error {
	return defaultCodec.Unseal(ctx, token, target)
}
