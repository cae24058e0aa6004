package service

import (
	"context"
	"fmt"

	"gocloud.dev/secrets"

	sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"
)

// kmsService implements KMSService using gocloud.dev/secrets.
type kmsService struct{}

// NewKMSService creates a new KMS service instance.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper opens a secrets.Keeper for the KMS provider selected by keyURI.
// The provider driver must be registered by the binary (see cmd/app).
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (sealingDomain.KMSKeeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

// LoadMasterKey decodes a configured master key.
//
// With an empty keyURI the decoded bytes are the master key. Otherwise they are
// KMS ciphertext, unwrapped through the keeper opened for keyURI. The caller owns
// the returned slice and should zero it once handed to a KeyStore.
func LoadMasterKey(ctx context.Context, kms KMSService, encoded, keyURI string) ([]byte, error) {
	raw, err := sealingDomain.ParseMasterKey(encoded)
	if err != nil {
		return nil, err
	}
	if keyURI == "" {
		return raw, nil
	}

	keeper, err := kms.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = keeper.Close()
	}()

	masterKey, err := keeper.Decrypt(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt master key with KMS: %w", err)
	}
	if len(masterKey) == 0 {
		return nil, sealingDomain.ErrInvalidKeyLength
	}
	return masterKey, nil
}

// WrapMasterKey encrypts a master key with the keeper opened for keyURI and
// returns it in the format accepted by LoadMasterKey.
func WrapMasterKey(ctx context.Context, kms KMSService, masterKey []byte, keyURI string) (string, error) {
	keeper, err := kms.OpenKeeper(ctx, keyURI)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = keeper.Close()
	}()

	ciphertext, err := keeper.Encrypt(ctx, masterKey)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt master key with KMS: %w", err)
	}
	return sealingDomain.EncodeMasterKey(ciphertext), nil
}
