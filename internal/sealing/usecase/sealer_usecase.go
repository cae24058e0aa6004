package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"
)

// sealerUseCase implements SealerUseCase on top of an Engine.
type sealerUseCase struct {
	engine Engine
}

// NewSealerUseCase creates a SealerUseCase backed by engine.
func NewSealerUseCase(engine Engine) SealerUseCase {
	return &sealerUseCase{engine: engine}
}

// Seal encodes value as JSON and seals the encoding.
// Returns ErrSerializationFailed if value cannot be JSON-encoded.
func (s *sealerUseCase) Seal(ctx context.Context, value any) (string, error) {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("%w: %v", sealingDomain.ErrSerializationFailed, err)
	}
	defer sealingDomain.Zero(plaintext)

	return s.engine.SealToken(plaintext)
}

// Unseal opens token and decodes the JSON plaintext into target.
// Returns ErrDeserializationFailed if the plaintext does not fit target.
func (s *sealerUseCase) Unseal(ctx context.Context, token string, target any) error {
	plaintext, err := s.engine.OpenToken(token)
	if err != nil {
		return err
	}
	defer sealingDomain.Zero(plaintext)

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: %v", sealingDomain.ErrDeserializationFailed, err)
	}
	return nil
}

// SealBytes seals plaintext as-is.
func (s *sealerUseCase) SealBytes(ctx context.Context, plaintext []byte) (string, error) {
	return s.engine.SealToken(plaintext)
}

// UnsealBytes opens token and returns the raw plaintext.
func (s *sealerUseCase) UnsealBytes(ctx context.Context, token string) ([]byte, error) {
	return s.engine.OpenToken(token)
}
