package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"

	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"
)

// minimum number of 0xff bytes in a PKCS#1 v1.5 type 1 block
const minPaddingLength = 8

var errSignaturePadding = errors.New("signature padding check failed")

// signatureProcessor implements the SignatureProcessor interface
type signatureProcessor struct {
	logger logger.Logger
}

// NewSignatureProcessor creates and returns a new instance of signatureProcessor
func NewSignatureProcessor(logger logger.Logger) (cryptoalg.SignatureProcessor, error) {
	return &signatureProcessor{
		logger: logger,
	}, nil
}

func (s *signatureProcessor) Digest(message []byte) string {
	sum := sha256.Sum256(message)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Sign pads the digest text with PKCS#1 v1.5 type 1 and applies the private key operation.
// A zero hash tells SignPKCS1v15 to sign the input as is, without a DigestInfo prefix.
func (s *signatureProcessor) Sign(digest string, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("%w: private key cannot be nil", apperrors.ErrValidation)
	}

	signature, err := rsa.SignPKCS1v15(rand.Reader, privateKey, crypto.Hash(0), []byte(digest))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to sign digest: %w", apperrors.ErrCryptoOperation, err)
	}

	s.logger.Debug("RSA digest signing succeeded")
	return signature, nil
}

// Recover computes signature^e mod n and strips the 00 01 FF..FF 00 prefix.
func (s *signatureProcessor) Recover(signature []byte, publicKey *rsa.PublicKey) (string, error) {
	if publicKey == nil {
		return "", fmt.Errorf("%w: public key cannot be nil", apperrors.ErrValidation)
	}

	k := publicKey.Size()
	if len(signature) == 0 || len(signature) > k {
		return "", fmt.Errorf("%w: signature length %d does not match a %d byte key", apperrors.ErrValidation, len(signature), k)
	}

	c := new(big.Int).SetBytes(signature)
	if c.Cmp(publicKey.N) >= 0 {
		return "", fmt.Errorf("%w: signature representative out of range", apperrors.ErrCryptoOperation)
	}

	m := new(big.Int).Exp(c, big.NewInt(int64(publicKey.E)), publicKey.N)
	em := m.FillBytes(make([]byte, k))

	digest, err := unpadType1(em)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrCryptoOperation, err)
	}

	s.logger.Debug("RSA digest recovery succeeded")
	return string(digest), nil
}

func unpadType1(em []byte) ([]byte, error) {
	if len(em) < 2+minPaddingLength+1 || em[0] != 0x00 || em[1] != 0x01 {
		return nil, errSignaturePadding
	}

	i := 2
	for i < len(em) && em[i] == 0xff {
		i++
	}
	if i == len(em) || em[i] != 0x00 || i-2 < minPaddingLength {
		return nil, errSignaturePadding
	}
	return em[i+1:], nil
}
