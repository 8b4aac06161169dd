package app

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
	"github.com/Criscape/security-crypto-lab/internal/pkg/codec"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"
	"github.com/Criscape/security-crypto-lab/internal/pkg/metrics"
)

// symmetricCipherService implements the SymmetricCipherService interface
type symmetricCipherService struct {
	aesProcessor cryptoalg.AESProcessor
	logger       logger.Logger
}

// NewSymmetricCipherService creates a new symmetricCipherService instance
func NewSymmetricCipherService(aesProcessor cryptoalg.AESProcessor, logger logger.Logger) (cryptoalg.SymmetricCipherService, error) {
	return &symmetricCipherService{
		aesProcessor: aesProcessor,
		logger:       logger,
	}, nil
}

func (s *symmetricCipherService) Encrypt(ctx context.Context, message, key string) (cipherText string, err error) {
	defer func() { metrics.ObserveOperation(OpAESEncrypt, err) }()

	if key == "" {
		return "", fmt.Errorf("%w: key is required", apperrors.ErrValidation)
	}

	sealed, err := s.aesProcessor.Encrypt([]byte(message), key)
	if err != nil {
		return "", err
	}
	return codec.Encode(sealed), nil
}

func (s *symmetricCipherService) Decrypt(ctx context.Context, cipherText, key string) (message string, err error) {
	defer func() { metrics.ObserveOperation(OpAESDecrypt, err) }()

	if key == "" {
		return "", fmt.Errorf("%w: key is required", apperrors.ErrValidation)
	}

	sealed, err := codec.Decode("cipherText", cipherText)
	if err != nil {
		return "", err
	}

	plainText, err := s.aesProcessor.Decrypt(sealed, key)
	if err != nil {
		return "", err
	}
	return string(plainText), nil
}

// asymmetricCipherService implements the AsymmetricCipherService interface
type asymmetricCipherService struct {
	keyGenerator cryptoalg.KeyGenerator
	rsaProcessor cryptoalg.RSAProcessor
	keySize      int
	logger       logger.Logger
}

// NewAsymmetricCipherService creates a new asymmetricCipherService generating keySize bit RSA keys
func NewAsymmetricCipherService(
	keyGenerator cryptoalg.KeyGenerator,
	rsaProcessor cryptoalg.RSAProcessor,
	keySize int,
	logger logger.Logger,
) (cryptoalg.AsymmetricCipherService, error) {
	return &asymmetricCipherService{
		keyGenerator: keyGenerator,
		rsaProcessor: rsaProcessor,
		keySize:      keySize,
		logger:       logger,
	}, nil
}

// Encrypt checks the OAEP capacity before paying for a key generation.
func (s *asymmetricCipherService) Encrypt(ctx context.Context, message string) (result *cryptoalg.AsymmetricEncryption, err error) {
	defer func() { metrics.ObserveOperation(OpRSAEncrypt, err) }()

	if limit := s.keySize/8 - 2*sha256.Size - 2; len(message) > limit {
		return nil, fmt.Errorf("%w: message of %d bytes exceeds the %d byte limit for %d bit keys", apperrors.ErrValidation, len(message), limit, s.keySize)
	}

	privateKey, err := s.keyGenerator.GenerateRSA(ctx, s.keySize)
	if err != nil {
		return nil, err
	}

	sealed, err := s.rsaProcessor.Encrypt([]byte(message), &privateKey.PublicKey)
	if err != nil {
		return nil, err
	}

	privatePEM, err := s.rsaProcessor.EncodePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	return &cryptoalg.AsymmetricEncryption{
		CipherText: codec.Encode(sealed),
		PrivateKey: privatePEM,
	}, nil
}

func (s *asymmetricCipherService) Decrypt(ctx context.Context, cipherText, privateKey string) (message string, err error) {
	defer func() { metrics.ObserveOperation(OpRSADecrypt, err) }()

	key, err := s.rsaProcessor.ParsePrivateKey(privateKey)
	if err != nil {
		return "", err
	}

	sealed, err := codec.Decode("cipherText", cipherText)
	if err != nil {
		return "", err
	}

	plainText, err := s.rsaProcessor.Decrypt(sealed, key)
	if err != nil {
		s.logger.Warn("RSA decryption failed: ", err)
		return "", err
	}
	return string(plainText), nil
}

// ecCipherService implements the ECCipherService interface
type ecCipherService struct {
	keyGenerator   cryptoalg.KeyGenerator
	eciesProcessor cryptoalg.ECIESProcessor
	logger         logger.Logger
}

// NewECCipherService creates a new ecCipherService instance
func NewECCipherService(
	keyGenerator cryptoalg.KeyGenerator,
	eciesProcessor cryptoalg.ECIESProcessor,
	logger logger.Logger,
) (cryptoalg.ECCipherService, error) {
	return &ecCipherService{
		keyGenerator:   keyGenerator,
		eciesProcessor: eciesProcessor,
		logger:         logger,
	}, nil
}

func (s *ecCipherService) Encrypt(ctx context.Context, message string) (result *cryptoalg.ECEncryption, err error) {
	defer func() { metrics.ObserveOperation(OpECIESEncrypt, err) }()

	privateKey, err := s.keyGenerator.GenerateSecp256k1(ctx)
	if err != nil {
		return nil, err
	}

	envelope, err := s.eciesProcessor.Encrypt([]byte(message), privateKey.PublicKey())
	if err != nil {
		return nil, err
	}

	return &cryptoalg.ECEncryption{
		EncryptInfo: codec.EncodeEnvelope(envelope),
		PrivateKey:  codec.Encode(privateKey.Bytes()),
	}, nil
}

func (s *ecCipherService) Decrypt(ctx context.Context, encryptInfo cryptoalg.EncodedEnvelope, privateKey string) (message string, err error) {
	defer func() { metrics.ObserveOperation(OpECIESDecrypt, err) }()

	rawKey, err := codec.Decode("privateKey", privateKey)
	if err != nil {
		return "", err
	}
	key, err := s.eciesProcessor.ParsePrivateKey(rawKey)
	if err != nil {
		return "", err
	}

	envelope, err := codec.DecodeEnvelope(encryptInfo)
	if err != nil {
		return "", err
	}

	plainText, err := s.eciesProcessor.Decrypt(envelope, key)
	if err != nil {
		s.logger.Warn("ECIES decryption failed: ", err)
		return "", err
	}
	return string(plainText), nil
}
