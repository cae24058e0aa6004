package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets"

	sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"

	_ "gocloud.dev/secrets/localsecrets"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

type mockKMSService struct {
	mock.Mock
}

func (m *mockKMSService) OpenKeeper(ctx context.Context, keyURI string) (sealingDomain.KMSKeeper, error) {
	args := m.Called(ctx, keyURI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(sealingDomain.KMSKeeper), args.Error(1)
}

type mockKMSKeeper struct {
	mock.Mock
}

func (m *mockKMSKeeper) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	args := m.Called(ctx, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockKMSKeeper) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockKMSKeeper) Close() error {
	return m.Called().Error(0)
}

func TestKMSService_OpenKeeper(t *testing.T) {
	ctx := context.Background()
	kmsService := NewKMSService()

	t.Run("Success_LocalSecrets", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		require.NotNil(t, keeper)

		_, ok := keeper.(*secrets.Keeper)
		assert.True(t, ok, "keeper should be *secrets.Keeper")
		assert.NoError(t, keeper.Close())
	})

	t.Run("Error_InvalidURI", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "invalid://uri")
		assert.Error(t, err)
		assert.Nil(t, keeper)
		assert.Contains(t, err.Error(), "failed to open KMS keeper")
	})
}

func TestLoadMasterKey(t *testing.T) {
	ctx := context.Background()
	masterKey := []byte("12345678901234567890123456789012")

	t.Run("plain base64 without KMS", func(t *testing.T) {
		got, err := LoadMasterKey(ctx, NewKMSService(), sealingDomain.EncodeMasterKey(masterKey), "")
		require.NoError(t, err)
		assert.Equal(t, masterKey, got)
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, err := LoadMasterKey(ctx, NewKMSService(), "%%%", "")
		assert.ErrorIs(t, err, sealingDomain.ErrInvalidMasterKeyBase64)
	})

	t.Run("wrap and unwrap with localsecrets", func(t *testing.T) {
		kms := NewKMSService()
		keyURI := generateLocalSecretsURI(t)

		wrapped, err := WrapMasterKey(ctx, kms, masterKey, keyURI)
		require.NoError(t, err)
		assert.NotEqual(t, sealingDomain.EncodeMasterKey(masterKey), wrapped)

		got, err := LoadMasterKey(ctx, kms, wrapped, keyURI)
		require.NoError(t, err)
		assert.Equal(t, masterKey, got)
	})

	t.Run("keeper decrypt failure", func(t *testing.T) {
		kms := &mockKMSService{}
		keeper := &mockKMSKeeper{}
		kms.On("OpenKeeper", ctx, "test://key").Return(keeper, nil)
		keeper.On("Decrypt", ctx, []byte("wrapped")).Return(nil, errors.New("access denied"))
		keeper.On("Close").Return(nil)

		_, err := LoadMasterKey(ctx, kms, sealingDomain.EncodeMasterKey([]byte("wrapped")), "test://key")
		assert.ErrorContains(t, err, "failed to decrypt master key with KMS")
		kms.AssertExpectations(t)
		keeper.AssertExpectations(t)
	})

	t.Run("keeper returns empty key", func(t *testing.T) {
		kms := &mockKMSService{}
		keeper := &mockKMSKeeper{}
		kms.On("OpenKeeper", ctx, "test://key").Return(keeper, nil)
		keeper.On("Decrypt", ctx, []byte("wrapped")).Return([]byte{}, nil)
		keeper.On("Close").Return(nil)

		_, err := LoadMasterKey(ctx, kms, sealingDomain.EncodeMasterKey([]byte("wrapped")), "test://key")
		assert.ErrorIs(t, err, sealingDomain.ErrInvalidKeyLength)
	})

	t.Run("open keeper failure", func(t *testing.T) {
		kms := &mockKMSService{}
		kms.On("OpenKeeper", ctx, "test://key").Return(nil, errors.New("failed to open KMS keeper"))

		_, err := LoadMasterKey(ctx, kms, sealingDomain.EncodeMasterKey([]byte("wrapped")), "test://key")
		assert.Error(t, err)
	})
}
