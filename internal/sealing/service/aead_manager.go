package service

import (
	sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"
)

// AEADManagerService implements the AEADManager interface for AES-256-GCM.
type AEADManagerService struct{}

// NewAEADManager creates a new AEADManagerService.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{}
}

// CreateCipher creates an AES-256-GCM cipher bound to key.
// Returns ErrEncryptionFailed if key is not a 32-byte derived key.
func (am *AEADManagerService) CreateCipher(key []byte) (AEAD, error) {
	if len(key) != sealingDomain.DerivedKeySize {
		return nil, sealingDomain.ErrEncryptionFailed
	}
	return NewAESGCM(key)
}
