package usecase

import (
	"context"
	"log/slog"

	sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"
)

// sealerUseCaseWithLogging logs failed operations by error kind. Values, tokens,
// key material and error details are never logged.
type sealerUseCaseWithLogging struct {
	next   SealerUseCase
	logger *slog.Logger
}

// NewSealerUseCaseWithLogging wraps a SealerUseCase with failure logging.
func NewSealerUseCaseWithLogging(useCase SealerUseCase, logger *slog.Logger) SealerUseCase {
	return &sealerUseCaseWithLogging{
		next:   useCase,
		logger: logger,
	}
}

func (s *sealerUseCaseWithLogging) logFailure(ctx context.Context, operation string, err error) {
	if err == nil {
		return
	}
	s.logger.WarnContext(ctx, "sealing operation failed",
		slog.String("operation", operation),
		slog.String("error_kind", sealingDomain.ErrorKind(err)),
	)
}

func (s *sealerUseCaseWithLogging) Seal(ctx context.Context, value any) (string, error) {
	token, err := s.next.Seal(ctx, value)
	s.logFailure(ctx, "seal", err)
	return token, err
}

func (s *sealerUseCaseWithLogging) Unseal(ctx context.Context, token string, target any) error {
	err := s.next.Unseal(ctx, token, target)
	s.logFailure(ctx, "unseal", err)
	return err
}

func (s *sealerUseCaseWithLogging) SealBytes(ctx context.Context, plaintext []byte) (string, error) {
	token, err := s.next.SealBytes(ctx, plaintext)
	s.logFailure(ctx, "seal_bytes", err)
	return token, err
}

func (s *sealerUseCaseWithLogging) UnsealBytes(ctx context.Context, token string) ([]byte, error) {
	plaintext, err := s.next.UnsealBytes(ctx, token)
	s.logFailure(ctx, "unseal_bytes", err)
	return plaintext, err
}
