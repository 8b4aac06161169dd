//go:build unit
// +build unit

package cryptography

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
	pkgTesting "github.com/Criscape/security-crypto-lab/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKeyGenerator(t *testing.T, workers int, timeout time.Duration) *pooledKeyGenerator {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)
	rsaProcessor, err := NewRSAProcessor(logger)
	require.NoError(t, err)

	generator, err := NewPooledKeyGenerator(workers, timeout, rsaProcessor, logger)
	require.NoError(t, err)
	return generator.(*pooledKeyGenerator)
}

func TestPooledKeyGenerator(t *testing.T) {
	generator := setupKeyGenerator(t, 2, 30*time.Second)
	ctx := context.Background()

	t.Run("GenerateRSA", func(t *testing.T) {
		privateKey, err := generator.GenerateRSA(ctx, TestKeySize2048)
		require.NoError(t, err)
		assert.Equal(t, TestKeySize2048, privateKey.N.BitLen())
	})

	t.Run("GenerateSecp256k1", func(t *testing.T) {
		first, err := generator.GenerateSecp256k1(ctx)
		require.NoError(t, err)
		second, err := generator.GenerateSecp256k1(ctx)
		require.NoError(t, err)
		assert.False(t, first.Equal(second))
	})

	t.Run("Concurrent", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := generator.GenerateSecp256k1(ctx)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			assert.NoError(t, err)
		}
	})
}

func TestPooledKeyGenerator_Timeout(t *testing.T) {
	generator := setupKeyGenerator(t, 1, time.Nanosecond)

	_, err := generator.GenerateRSA(context.Background(), TestKeySize2048)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCryptoOperation)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPooledKeyGenerator_WaitsForSlot(t *testing.T) {
	generator := setupKeyGenerator(t, 1, 50*time.Millisecond)
	require.True(t, generator.slots.TryAcquire(1))
	defer generator.slots.Release(1)

	_, err := generator.GenerateSecp256k1(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewPooledKeyGenerator_InvalidSettings(t *testing.T) {
	logger := pkgTesting.SetupTestLogger(t)
	rsaProcessor, err := NewRSAProcessor(logger)
	require.NoError(t, err)

	_, err = NewPooledKeyGenerator(0, time.Second, rsaProcessor, logger)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = NewPooledKeyGenerator(1, 0, rsaProcessor, logger)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
