package app

import (
	"fmt"

	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/infrastructure/cryptography"
	"github.com/Criscape/security-crypto-lab/internal/pkg/config"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"
)

// CryptoServices bundles the stateless operation services and the processors they share.
type CryptoServices struct {
	HashProcessor cryptoalg.HashProcessor
	KeyGenerator  cryptoalg.KeyGenerator

	Symmetric  cryptoalg.SymmetricCipherService
	Asymmetric cryptoalg.AsymmetricCipherService
	EC         cryptoalg.ECCipherService
	Signature  cryptoalg.SignatureService
}

// NewCryptoServices builds processors, the pooled key generator and the operation services from settings
func NewCryptoServices(settings *config.CryptoSettings, logger logger.Logger) (*CryptoServices, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	hashProcessor, err := cryptography.NewHashProcessor(settings.SaltMode, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create hash processor: %w", err)
	}
	aesProcessor, err := cryptography.NewAESProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}
	rsaProcessor, err := cryptography.NewRSAProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}
	eciesProcessor, err := cryptography.NewECIESProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create ECIES processor: %w", err)
	}
	signatureProcessor, err := cryptography.NewSignatureProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create signature processor: %w", err)
	}

	keyGenerator, err := cryptography.NewPooledKeyGenerator(settings.KeyGenWorkers, settings.KeyGenTimeout, rsaProcessor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}

	keySize := int(settings.RSAKeySize)

	symmetric, err := NewSymmetricCipherService(aesProcessor, logger)
	if err != nil {
		return nil, err
	}
	asymmetric, err := NewAsymmetricCipherService(keyGenerator, rsaProcessor, keySize, logger)
	if err != nil {
		return nil, err
	}
	ec, err := NewECCipherService(keyGenerator, eciesProcessor, logger)
	if err != nil {
		return nil, err
	}
	signature, err := NewSignatureService(keyGenerator, rsaProcessor, signatureProcessor, keySize, logger)
	if err != nil {
		return nil, err
	}

	return &CryptoServices{
		HashProcessor: hashProcessor,
		KeyGenerator:  keyGenerator,
		Symmetric:     symmetric,
		Asymmetric:    asymmetric,
		EC:            ec,
		Signature:     signature,
	}, nil
}
