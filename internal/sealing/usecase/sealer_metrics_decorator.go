package usecase

import (
	"context"
	"time"

	"github.com/allisson/sealfield/internal/metrics"
)

const metricsDomain = "sealing"

// sealerUseCaseWithMetrics decorates SealerUseCase with metrics instrumentation.
type sealerUseCaseWithMetrics struct {
	next    SealerUseCase
	metrics metrics.BusinessMetrics
}

// NewSealerUseCaseWithMetrics wraps a SealerUseCase with metrics recording.
func NewSealerUseCaseWithMetrics(useCase SealerUseCase, m metrics.BusinessMetrics) SealerUseCase {
	return &sealerUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *sealerUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFor(err)
	s.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	s.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Seal records metrics for value sealing.
func (s *sealerUseCaseWithMetrics) Seal(ctx context.Context, value any) (string, error) {
	start := time.Now()
	token, err := s.next.Seal(ctx, value)
	s.record(ctx, "seal", start, err)
	return token, err
}

// Unseal records metrics for value unsealing.
func (s *sealerUseCaseWithMetrics) Unseal(ctx context.Context, token string, target any) error {
	start := time.Now()
	err := s.next.Unseal(ctx, token, target)
	s.record(ctx, "unseal", start, err)
	return err
}

// SealBytes records metrics for raw byte sealing.
func (s *sealerUseCaseWithMetrics) SealBytes(ctx context.Context, plaintext []byte) (string, error) {
	start := time.Now()
	token, err := s.next.SealBytes(ctx, plaintext)
	s.record(ctx, "seal_bytes", start, err)
	return token, err
}

// UnsealBytes records metrics for raw byte unsealing.
func (s *sealerUseCaseWithMetrics) UnsealBytes(ctx context.Context, token string) ([]byte, error) {
	start := time.Now()
	plaintext, err := s.next.UnsealBytes(ctx, token)
	s.record(ctx, "unseal_bytes", start, err)
	return plaintext, err
}
