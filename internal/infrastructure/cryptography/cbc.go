package cryptography

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

var errInvalidPadding = errors.New("invalid PKCS#7 padding")

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(append([]byte{}, data...), bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errInvalidPadding
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, errInvalidPadding
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, errInvalidPadding
		}
	}
	return data[:len(data)-padding], nil
}

// aesCBCEncrypt pads plainText with PKCS#7 and encrypts it with AES-CBC.
func aesCBCEncrypt(key, iv, plainText []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("invalid IV size: got %d, want %d", len(iv), block.BlockSize())
	}

	padded := pkcs7Pad(plainText, block.BlockSize())
	cipherText := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(cipherText, padded)
	return cipherText, nil
}

// aesCBCDecrypt decrypts AES-CBC and strips PKCS#7 padding. A padding failure is reported
// as errInvalidPadding so callers can tell it apart from malformed input.
func aesCBCDecrypt(key, iv, cipherText []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("invalid IV size: got %d, want %d", len(iv), block.BlockSize())
	}
	if len(cipherText) == 0 || len(cipherText)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("ciphertext is not a multiple of the block size")
	}

	padded := make([]byte, len(cipherText))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, cipherText)
	return pkcs7Unpad(padded, block.BlockSize())
}
