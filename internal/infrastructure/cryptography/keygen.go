package cryptography

import (
	"context"
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"
	"github.com/Criscape/security-crypto-lab/internal/pkg/metrics"

	secp256k1secec "gitlab.com/yawning/secp256k1-voi/secec"
	"golang.org/x/sync/semaphore"
)

const (
	algorithmRSA       = "rsa"
	algorithmSecp256k1 = "secp256k1"
)

// pooledKeyGenerator bounds the number of concurrent key generations with a weighted semaphore.
// A caller that gives up releases nothing early: the abandoned generation keeps its slot until it
// finishes, so the worker count is a hard bound on CPU spent generating keys.
type pooledKeyGenerator struct {
	slots        *semaphore.Weighted
	timeout      time.Duration
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger
}

// NewPooledKeyGenerator creates a KeyGenerator running at most workers generations at once.
// Each call waits at most timeout for a slot and its key.
func NewPooledKeyGenerator(workers int, timeout time.Duration, rsaProcessor cryptoalg.RSAProcessor, logger logger.Logger) (cryptoalg.KeyGenerator, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: key generator needs at least one worker, got %d", apperrors.ErrValidation, workers)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: key generator timeout must be positive", apperrors.ErrValidation)
	}
	return &pooledKeyGenerator{
		slots:        semaphore.NewWeighted(int64(workers)),
		timeout:      timeout,
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

func (g *pooledKeyGenerator) GenerateRSA(ctx context.Context, bits int) (*rsa.PrivateKey, error) {
	return generate(ctx, g, algorithmRSA, func() (*rsa.PrivateKey, error) {
		privateKey, _, err := g.rsaProcessor.GenerateKeys(bits)
		return privateKey, err
	})
}

func (g *pooledKeyGenerator) GenerateSecp256k1(ctx context.Context) (*secp256k1secec.PrivateKey, error) {
	return generate(ctx, g, algorithmSecp256k1, secp256k1secec.GenerateKey)
}

type generated[T any] struct {
	key T
	err error
}

func generate[T any](ctx context.Context, g *pooledKeyGenerator, algorithm string, fn func() (T, error)) (T, error) {
	var zero T
	start := time.Now()
	defer func() {
		metrics.KeyGenDuration.WithLabelValues(algorithm).Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.slots.Acquire(ctx, 1); err != nil {
		g.logger.Warn("Timed out waiting for a ", algorithm, " key generation worker")
		return zero, fmt.Errorf("%w: waiting for %s key generation worker: %w", apperrors.ErrCryptoOperation, algorithm, err)
	}

	done := make(chan generated[T], 1)
	metrics.KeyGenInFlight.Inc()
	go func() {
		defer g.slots.Release(1)
		defer metrics.KeyGenInFlight.Dec()
		key, err := fn()
		done <- generated[T]{key: key, err: err}
	}()

	select {
	case result := <-done:
		if result.err != nil {
			return zero, fmt.Errorf("%w: %s key generation: %w", apperrors.ErrCryptoOperation, algorithm, result.err)
		}
		return result.key, nil
	case <-ctx.Done():
		g.logger.Warn("Abandoned ", algorithm, " key generation: ", ctx.Err())
		return zero, fmt.Errorf("%w: %s key generation: %w", apperrors.ErrCryptoOperation, algorithm, ctx.Err())
	}
}
