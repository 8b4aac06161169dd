package cryptography

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"
)

const (
	pemTypePrivateKey    = "PRIVATE KEY"
	pemTypeRSAPrivateKey = "RSA PRIVATE KEY"
	pemTypeRSAPublicKey  = "RSA PUBLIC KEY"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified bit size.
// Recommended sizes: 2048 (minimum), 3072, 4096 bits.
func (r *rsaProcessor) GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	r.logger.Info("Generated RSA key pair of ", keySize, " bits")
	return privateKey, &privateKey.PublicKey, nil
}

// Encrypt encrypts plaintext using RSA-OAEP with SHA-256.
// The plaintext is limited to keySize/8 - 2*32 - 2 bytes, 190 bytes for a 2048 bit key.
func (r *rsaProcessor) Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("%w: public key cannot be nil", apperrors.ErrValidation)
	}

	maxSize := publicKey.Size() - 2*sha256.Size - 2
	if len(plainText) > maxSize {
		return nil, fmt.Errorf("%w: message of %d bytes exceeds the %d byte limit of the key", apperrors.ErrValidation, len(plainText), maxSize)
	}

	cipherText, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, publicKey, plainText, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encrypt data: %w", apperrors.ErrCryptoOperation, err)
	}

	r.logger.Debug("RSA encryption succeeded")
	return cipherText, nil
}

// Decrypt decrypts RSA-OAEP ciphertext using the private key.
func (r *rsaProcessor) Decrypt(cipherText []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("%w: private key cannot be nil", apperrors.ErrValidation)
	}

	plainText, err := rsa.DecryptOAEP(sha256.New(), nil, privateKey, cipherText, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt data: %w", apperrors.ErrCryptoOperation, err)
	}

	r.logger.Debug("RSA decryption succeeded")
	return plainText, nil
}

func (r *rsaProcessor) EncodePrivateKey(privateKey *rsa.PrivateKey) (string, error) {
	der, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal private key: %w", apperrors.ErrCryptoOperation, err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: pemTypePrivateKey, Bytes: der})), nil
}

func (r *rsaProcessor) EncodePublicKey(publicKey *rsa.PublicKey) string {
	der := x509.MarshalPKCS1PublicKey(publicKey)
	return string(pem.EncodeToMemory(&pem.Block{Type: pemTypeRSAPublicKey, Bytes: der}))
}

// ParsePrivateKey reads an RSA private key from PEM text in PKCS#8 or PKCS#1 format.
func (r *rsaProcessor) ParsePrivateKey(pemText string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return nil, fmt.Errorf("%w: failed to parse PEM block containing the private key", apperrors.ErrValidation)
	}

	if block.Type == pemTypeRSAPrivateKey {
		privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to parse PKCS#1 private key: %w", apperrors.ErrValidation, err)
		}
		return privateKey, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse private key in either PKCS#1 or PKCS#8 format: %w", apperrors.ErrValidation, err)
	}

	privateKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is not of type RSA", apperrors.ErrValidation)
	}
	return privateKey, nil
}

// ParsePublicKey reads an RSA public key from PEM text in PKCS#1 or PKIX format.
func (r *rsaProcessor) ParsePublicKey(pemText string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return nil, fmt.Errorf("%w: failed to parse PEM block containing the public key", apperrors.ErrValidation)
	}

	publicKey, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err == nil {
		return publicKey, nil
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse public key in either PKCS#1 or PKIX format: %w", apperrors.ErrValidation, err)
	}

	publicKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: public key is not of type RSA", apperrors.ErrValidation)
	}
	return publicKey, nil
}
