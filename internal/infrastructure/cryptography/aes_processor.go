package cryptography

import (
	"bytes"
	"crypto/aes"
	"crypto/md5" // #nosec G501 -- EVP_BytesToKey is defined over MD5
	"crypto/rand"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"
)

// aesProcessor implements the AESProcessor interface
type aesProcessor struct {
	logger logger.Logger
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger) (cryptoalg.AESProcessor, error) {
	return &aesProcessor{
		logger: logger,
	}, nil
}

// Encrypt encrypts plainText under a key and IV derived from passphrase and a random salt
func (a *aesProcessor) Encrypt(plainText []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, cryptoalg.OpenSSLSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("%w: failed to generate salt: %w", apperrors.ErrCryptoOperation, err)
	}

	key, iv := evpBytesToKey([]byte(passphrase), salt, cryptoalg.AESKeySize256, aes.BlockSize)
	cipherText, err := aesCBCEncrypt(key, iv, plainText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrCryptoOperation, err)
	}

	out := make([]byte, 0, len(cryptoalg.OpenSSLSaltHeader)+len(salt)+len(cipherText))
	out = append(out, cryptoalg.OpenSSLSaltHeader...)
	out = append(out, salt...)
	out = append(out, cipherText...)

	a.logger.Debug("AES encryption succeeded")
	return out, nil
}

// Decrypt decrypts a "Salted__" ciphertext. A plaintext that fails the padding check or is not
// valid UTF-8 is treated as a wrong passphrase and yields an empty result.
func (a *aesProcessor) Decrypt(cipherText []byte, passphrase string) ([]byte, error) {
	headerSize := len(cryptoalg.OpenSSLSaltHeader) + cryptoalg.OpenSSLSaltSize
	if len(cipherText) < headerSize || !bytes.HasPrefix(cipherText, []byte(cryptoalg.OpenSSLSaltHeader)) {
		return nil, fmt.Errorf("%w: ciphertext is missing the %q header", apperrors.ErrValidation, cryptoalg.OpenSSLSaltHeader)
	}

	salt := cipherText[len(cryptoalg.OpenSSLSaltHeader):headerSize]
	body := cipherText[headerSize:]
	if len(body) == 0 || len(body)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a positive multiple of %d", apperrors.ErrValidation, len(body), aes.BlockSize)
	}

	key, iv := evpBytesToKey([]byte(passphrase), salt, cryptoalg.AESKeySize256, aes.BlockSize)
	plainText, err := aesCBCDecrypt(key, iv, body)
	if errors.Is(err, errInvalidPadding) {
		a.logger.Debug("AES decryption produced invalid padding, treating as wrong key")
		return []byte{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrCryptoOperation, err)
	}
	if !utf8.Valid(plainText) {
		a.logger.Debug("AES decryption produced invalid UTF-8, treating as wrong key")
		return []byte{}, nil
	}

	a.logger.Debug("AES decryption succeeded")
	return plainText, nil
}

// evpBytesToKey derives key and IV the way OpenSSL's EVP_BytesToKey does with MD5 and one iteration:
// D_i = MD5(D_{i-1} || passphrase || salt), concatenated until keyLen+ivLen bytes are available.
func evpBytesToKey(passphrase, salt []byte, keyLen, ivLen int) ([]byte, []byte) {
	var derived, block []byte
	for len(derived) < keyLen+ivLen {
		h := md5.New() // #nosec G401
		h.Write(block)
		h.Write(passphrase)
		h.Write(salt)
		block = h.Sum(nil)
		derived = append(derived, block...)
	}
	return derived[:keyLen], derived[keyLen : keyLen+ivLen]
}
