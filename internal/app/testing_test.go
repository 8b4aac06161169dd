//go:build unit
// +build unit

package app

import (
	"crypto/rand"
	"crypto/rsa"
	"sync"
	"testing"

	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/infrastructure/cryptography"
	pkgTesting "github.com/Criscape/security-crypto-lab/internal/pkg/testing"

	"github.com/stretchr/testify/require"
)

const TestKeySize2048 = 2048

type testProcessors struct {
	hash      cryptoalg.HashProcessor
	aes       cryptoalg.AESProcessor
	rsa       cryptoalg.RSAProcessor
	ecies     cryptoalg.ECIESProcessor
	signature cryptoalg.SignatureProcessor
}

func setupProcessors(t *testing.T) *testProcessors {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)

	hashProcessor, err := cryptography.NewHashProcessor(cryptoalg.SaltModeRandom, logger)
	require.NoError(t, err)
	aesProcessor, err := cryptography.NewAESProcessor(logger)
	require.NoError(t, err)
	rsaProcessor, err := cryptography.NewRSAProcessor(logger)
	require.NoError(t, err)
	eciesProcessor, err := cryptography.NewECIESProcessor(logger)
	require.NoError(t, err)
	signatureProcessor, err := cryptography.NewSignatureProcessor(logger)
	require.NoError(t, err)

	return &testProcessors{
		hash:      hashProcessor,
		aes:       aesProcessor,
		rsa:       rsaProcessor,
		ecies:     eciesProcessor,
		signature: signatureProcessor,
	}
}

var (
	testRSAKeysOnce sync.Once
	testRSAKeys     [2]*rsa.PrivateKey
)

// testRSAKey returns one of two RSA keys generated once per test binary
func testRSAKey(t *testing.T, index int) *rsa.PrivateKey {
	t.Helper()
	testRSAKeysOnce.Do(func() {
		for i := range testRSAKeys {
			key, err := rsa.GenerateKey(rand.Reader, TestKeySize2048)
			if err != nil {
				panic(err)
			}
			testRSAKeys[i] = key
		}
	})
	return testRSAKeys[index]
}
