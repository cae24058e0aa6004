package service

import (
	"sync"

	sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"
)

// KeyStore holds the current master key.
//
// Reads and writes are mutually exclusive: Setup takes the write lock, WithKey the
// read lock, so no operation observes a partially written key. Concurrent sealing
// operations share the read lock and may interleave freely.
type KeyStore struct {
	mu  sync.RWMutex
	key []byte
}

// NewKeyStore creates an empty key store. Operations fail with ErrMasterKeyNotSet
// until Setup is called.
func NewKeyStore() *KeyStore {
	return &KeyStore{}
}

// Setup replaces the master key. Any non-empty length is accepted; the key is
// hashed before use. The input is copied, so the caller may zero its slice
// afterwards. Calling Setup again replaces the key (last writer wins) and zeroes
// the previous one.
//
// Returns ErrInvalidKeyLength for an empty key, leaving the store unchanged.
func (s *KeyStore) Setup(masterKey []byte) error {
	if len(masterKey) == 0 {
		return sealingDomain.ErrInvalidKeyLength
	}

	key := make([]byte, len(masterKey))
	copy(key, masterKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	sealingDomain.Zero(s.key)
	s.key = key
	return nil
}

// WithKey calls fn with the current master key for the duration of one operation.
// Returns ErrMasterKeyNotSet if Setup was never called.
func (s *KeyStore) WithKey(fn func(masterKey []byte) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.key) == 0 {
		return sealingDomain.ErrMasterKeyNotSet
	}
	return fn(s.key)
}

// IsSet reports whether a master key has been set up.
func (s *KeyStore) IsSet() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.key) > 0
}

// Close zeroes and discards the master key. The store can be set up again afterwards.
func (s *KeyStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealingDomain.Zero(s.key)
	s.key = nil
}
