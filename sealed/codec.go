package sealed

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/allisson/sealfield/internal/metrics"
	sealingService "github.com/allisson/sealfield/internal/sealing/service"
	sealingUseCase "github.com/allisson/sealfield/internal/sealing/usecase"
)

// Codec seals and unseals values under one master key. It is safe for
// concurrent use.
type Codec struct {
	keys   *sealingService.KeyStore
	sealer sealingUseCase.SealerUseCase
}

type options struct {
	logger        *slog.Logger
	meterProvider metric.MeterProvider
	namespace     string
	random        io.Reader
}

// Option configures a Codec.
type Option func(*options)

// WithLogger logs failed operations to logger. Logged records carry the
// operation name and error only.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMeterProvider records operation counts and durations on mp, prefixing
// metric names with namespace.
func WithMeterProvider(mp metric.MeterProvider, namespace string) Option {
	return func(o *options) {
		o.meterProvider = mp
		o.namespace = namespace
	}
}

// WithRandom replaces crypto/rand as the nonce source.
func WithRandom(r io.Reader) Option {
	return func(o *options) {
		o.random = r
	}
}

// New returns a Codec keyed by masterKey. The key may have any non-empty
// length and is copied, so the caller may zero its slice afterwards.
func New(masterKey []byte, opts ...Option) (*Codec, error) {
	c, err := newCodec(opts...)
	if err != nil {
		return nil, err
	}
	if err := c.keys.Setup(masterKey); err != nil {
		return nil, err
	}
	return c, nil
}

func newCodec(opts ...Option) (*Codec, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	keys := sealingService.NewKeyStore()
	engine := sealingService.NewEngine(
		keys,
		sealingService.NewRandomNonceGenerator(o.random),
		sealingService.NewAEADManager(),
	)

	sealer := sealingUseCase.NewSealerUseCase(engine)
	if o.logger != nil {
		sealer = sealingUseCase.NewSealerUseCaseWithLogging(sealer, o.logger)
	}
	if o.meterProvider != nil {
		bm, err := metrics.NewBusinessMetrics(o.meterProvider, o.namespace)
		if err != nil {
			return nil, fmt.Errorf("failed to create codec metrics: %w", err)
		}
		sealer = sealingUseCase.NewSealerUseCaseWithMetrics(sealer, bm)
	}

	return &Codec{keys: keys, sealer: sealer}, nil
}

// SetKey replaces the master key. Operations already in flight finish with
// the previous key.
func (c *Codec) SetKey(masterKey []byte) error {
	return c.keys.Setup(masterKey)
}

// Seal JSON-encodes value and returns its token.
func (c *Codec) Seal(ctx context.Context, value any) (string, error) {
	return c.sealer.Seal(ctx, value)
}

// Unseal decrypts token and JSON-decodes the plaintext into target.
func (c *Codec) Unseal(ctx context.Context, token string, target any) error {
	return c.sealer.Unseal(ctx, token, target)
}

// SealBytes returns the token for raw plaintext bytes.
func (c *Codec) SealBytes(ctx context.Context, plaintext []byte) (string, error) {
	return c.sealer.SealBytes(ctx, plaintext)
}

// UnsealBytes returns the raw plaintext of token.
func (c *Codec) UnsealBytes(ctx context.Context, token string) ([]byte, error) {
	return c.sealer.UnsealBytes(ctx, token)
}

// Close zeroes the master key. Later operations fail with ErrMasterKeyNotSet.
func (c *Codec) Close() {
	c.keys.Close()
}
