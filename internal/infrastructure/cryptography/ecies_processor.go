package cryptography

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"

	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secp256k1secec "gitlab.com/yawning/secp256k1-voi/secec"
)

// eciesProcessor implements the ECIESProcessor interface
type eciesProcessor struct {
	logger logger.Logger
}

// NewECIESProcessor creates and returns a new instance of eciesProcessor
func NewECIESProcessor(logger logger.Logger) (cryptoalg.ECIESProcessor, error) {
	return &eciesProcessor{
		logger: logger,
	}, nil
}

// Encrypt seals plainText to publicKey under a fresh ephemeral key.
func (e *eciesProcessor) Encrypt(plainText []byte, publicKey *secp256k1secec.PublicKey) (*cryptoalg.Envelope, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("%w: public key cannot be nil", apperrors.ErrValidation)
	}

	ephemeral, err := secp256k1secec.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate ephemeral key: %w", apperrors.ErrCryptoOperation, err)
	}
	ephemPublicKey := ephemeral.PublicKey().Point().UncompressedBytes()

	shared, err := sharedSecret(ephemeral, publicKey.Point().UncompressedBytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrCryptoOperation, err)
	}
	encKey, macKey := deriveECIESKeys(shared)

	iv := make([]byte, cryptoalg.ECIESIVSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("%w: failed to generate IV: %w", apperrors.ErrCryptoOperation, err)
	}

	cipherText, err := aesCBCEncrypt(encKey, iv, plainText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrCryptoOperation, err)
	}

	e.logger.Debug("ECIES encryption succeeded")
	return &cryptoalg.Envelope{
		CipherText:     cipherText,
		IV:             iv,
		MAC:            envelopeMAC(macKey, iv, ephemPublicKey, cipherText),
		EphemPublicKey: ephemPublicKey,
	}, nil
}

// Decrypt checks the MAC before touching the ciphertext.
func (e *eciesProcessor) Decrypt(envelope *cryptoalg.Envelope, privateKey *secp256k1secec.PrivateKey) ([]byte, error) {
	if envelope == nil || privateKey == nil {
		return nil, fmt.Errorf("%w: envelope and private key are required", apperrors.ErrValidation)
	}

	shared, err := sharedSecret(privateKey, envelope.EphemPublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrIntegrity, err)
	}
	encKey, macKey := deriveECIESKeys(shared)

	expected := envelopeMAC(macKey, envelope.IV, envelope.EphemPublicKey, envelope.CipherText)
	if !hmac.Equal(expected, envelope.MAC) {
		e.logger.Warn("ECIES envelope rejected: bad MAC")
		return nil, fmt.Errorf("%w: bad MAC", apperrors.ErrIntegrity)
	}

	plainText, err := aesCBCDecrypt(encKey, envelope.IV, envelope.CipherText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt envelope: %w", apperrors.ErrCryptoOperation, err)
	}

	e.logger.Debug("ECIES decryption succeeded")
	return plainText, nil
}

func (e *eciesProcessor) ParsePrivateKey(raw []byte) (*secp256k1secec.PrivateKey, error) {
	if len(raw) != cryptoalg.ECIESPrivateKeySize {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d", apperrors.ErrValidation, cryptoalg.ECIESPrivateKeySize, len(raw))
	}
	privateKey, err := secp256k1secec.NewPrivateKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid private key: %w", apperrors.ErrValidation, err)
	}
	return privateKey, nil
}

// sharedSecret returns the x-coordinate of privateKey * remote. ParsePubKey rejects
// malformed encodings and points off the curve.
func sharedSecret(privateKey *secp256k1secec.PrivateKey, remote []byte) ([]byte, error) {
	remoteKey, err := secp256k1.ParsePubKey(remote)
	if err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}

	scalar := secp256k1.PrivKeyFromBytes(privateKey.Bytes())
	defer scalar.Zero()

	shared := secp256k1.GenerateSharedSecret(scalar, remoteKey)
	if isZero(shared) {
		return nil, errors.New("shared secret is the point at infinity")
	}
	return shared, nil
}

// deriveECIESKeys splits SHA-512(shared) into the AES-256 key and the HMAC key.
func deriveECIESKeys(shared []byte) ([]byte, []byte) {
	digest := sha512.Sum512(shared)
	return digest[:32], digest[32:]
}

func envelopeMAC(macKey, iv, ephemPublicKey, cipherText []byte) []byte {
	mac := hmac.New(sha256.New, macKey)
	mac.Write(iv)
	mac.Write(ephemPublicKey)
	mac.Write(cipherText)
	return mac.Sum(nil)
}

func isZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}
