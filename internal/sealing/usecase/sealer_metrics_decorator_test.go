package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	sealingDomain "github.com/allisson/sealfield/internal/sealing/domain"
)

func expectMetrics(m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", mock.Anything, "sealing", operation, status).Once()
	m.On("RecordDuration", mock.Anything, "sealing", operation, mock.AnythingOfType("time.Duration"), status).
		Once()
}

func TestNewSealerUseCaseWithMetrics(t *testing.T) {
	decorator := NewSealerUseCaseWithMetrics(&mockSealerUseCase{}, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.IsType(t, &sealerUseCaseWithMetrics{}, decorator)
}

func TestSealerUseCaseWithMetrics_Seal(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		token          string
		err            error
		expectedStatus string
	}{
		{"Success_RecordsSuccessMetrics", "token", nil, "success"},
		{"Error_RecordsErrorMetrics", "", sealingDomain.ErrSerializationFailed, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &mockSealerUseCase{}
			m := &mockBusinessMetrics{}
			next.On("Seal", ctx, "value").Return(tt.token, tt.err).Once()
			expectMetrics(m, "seal", tt.expectedStatus)

			token, err := NewSealerUseCaseWithMetrics(next, m).Seal(ctx, "value")

			assert.Equal(t, tt.token, token)
			assert.Equal(t, tt.err, err)
			next.AssertExpectations(t)
			m.AssertExpectations(t)
		})
	}
}

func TestSealerUseCaseWithMetrics_Unseal(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		err            error
		expectedStatus string
	}{
		{"Success_RecordsSuccessMetrics", nil, "success"},
		{"Error_RecordsErrorMetrics", sealingDomain.ErrDecryptionFailed, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target string
			next := &mockSealerUseCase{}
			m := &mockBusinessMetrics{}
			next.On("Unseal", ctx, "token", &target).Return(tt.err).Once()
			expectMetrics(m, "unseal", tt.expectedStatus)

			err := NewSealerUseCaseWithMetrics(next, m).Unseal(ctx, "token", &target)

			assert.Equal(t, tt.err, err)
			next.AssertExpectations(t)
			m.AssertExpectations(t)
		})
	}
}

func TestSealerUseCaseWithMetrics_Bytes(t *testing.T) {
	ctx := context.Background()

	t.Run("SealBytes_Success", func(t *testing.T) {
		next := &mockSealerUseCase{}
		m := &mockBusinessMetrics{}
		next.On("SealBytes", ctx, []byte("raw")).Return("token", nil).Once()
		expectMetrics(m, "seal_bytes", "success")

		token, err := NewSealerUseCaseWithMetrics(next, m).SealBytes(ctx, []byte("raw"))
		require.NoError(t, err)
		assert.Equal(t, "token", token)
		m.AssertExpectations(t)
	})

	t.Run("UnsealBytes_Error", func(t *testing.T) {
		next := &mockSealerUseCase{}
		m := &mockBusinessMetrics{}
		boom := errors.New("boom")
		next.On("UnsealBytes", ctx, "token").Return(nil, boom).Once()
		expectMetrics(m, "unseal_bytes", "error")

		plaintext, err := NewSealerUseCaseWithMetrics(next, m).UnsealBytes(ctx, "token")
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, plaintext)
		m.AssertExpectations(t)
	})
}
