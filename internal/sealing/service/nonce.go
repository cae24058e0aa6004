package service

import (
	"crypto/rand"
	"io"

	sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"
)

// RandomNonceGenerator draws nonces from a cryptographically secure source.
//
// Uniqueness relies entirely on randomness. With 96-bit random nonces the
// collision probability becomes significant only after roughly 2^32 encryptions
// under one master key.
type RandomNonceGenerator struct {
	source io.Reader
}

// NewRandomNonceGenerator creates a generator reading from source, which must be
// safe for concurrent use. A nil source selects crypto/rand.Reader.
func NewRandomNonceGenerator(source io.Reader) *RandomNonceGenerator {
	if source == nil {
		source = rand.Reader
	}
	return &RandomNonceGenerator{source: source}
}

// Generate returns NonceSize random bytes. A failing or short source yields
// ErrRandomnessUnavailable; there is no fallback.
func (g *RandomNonceGenerator) Generate() ([]byte, error) {
	nonce := make([]byte, sealingDomain.NonceSize)
	if _, err := io.ReadFull(g.source, nonce); err != nil {
		return nil, sealingDomain.ErrRandomnessUnavailable
	}
	return nonce, nil
}

// SingleUseNonce is a NonceSequence holding exactly one nonce.
type SingleUseNonce struct {
	nonce []byte
}

// NewSingleUseNonce wraps nonce so it can be advanced once.
func NewSingleUseNonce(nonce []byte) *SingleUseNonce {
	return &SingleUseNonce{nonce: nonce}
}

// Advance returns the nonce on the first call and ErrNonceExhausted afterwards.
func (n *SingleUseNonce) Advance() ([]byte, error) {
	if n.nonce == nil {
		return nil, sealingDomain.ErrNonceExhausted
	}
	nonce := n.nonce
	n.nonce = nil
	return nonce, nil
}
