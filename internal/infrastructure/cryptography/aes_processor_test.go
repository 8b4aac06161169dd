//go:build unit
// +build unit

package cryptography

import (
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
	pkgTesting "github.com/Criscape/security-crypto-lab/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// produced with: openssl enc -aes-256-cbc -md md5 -S 0102030405060708 -pass pass:secreto
const openSSLVector = "U2FsdGVkX18BAgMEBQYHCA88UmeBvHMiIedeQMNa7Lw="

func setupAESProcessor(t *testing.T) cryptoalg.AESProcessor {
	t.Helper()
	logger := pkgTesting.SetupTestLogger(t)
	processor, err := NewAESProcessor(logger)
	require.NoError(t, err)
	return processor
}

func TestAESProcessor(t *testing.T) {
	processor := setupAESProcessor(t)

	t.Run("EncryptDecrypt", func(t *testing.T) {
		plainText := []byte("This is a test message.")

		cipherText, err := processor.Encrypt(plainText, "secreto")
		require.NoError(t, err)
		assert.Equal(t, []byte("Salted__"), cipherText[:8])
		assert.Len(t, cipherText, 16+32)

		decrypted, err := processor.Decrypt(cipherText, "secreto")
		require.NoError(t, err)
		assert.Equal(t, plainText, decrypted)
	})

	t.Run("EncodedPrefix", func(t *testing.T) {
		cipherText, err := processor.Encrypt([]byte("hi"), "k")
		require.NoError(t, err)
		assert.Equal(t, "U2FsdGVkX1", base64.StdEncoding.EncodeToString(cipherText)[:10])
	})

	t.Run("FreshSaltPerCall", func(t *testing.T) {
		first, err := processor.Encrypt([]byte("same"), "key")
		require.NoError(t, err)
		second, err := processor.Encrypt([]byte("same"), "key")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("DecryptOpenSSLVector", func(t *testing.T) {
		cipherText, err := base64.StdEncoding.DecodeString(openSSLVector)
		require.NoError(t, err)

		decrypted, err := processor.Decrypt(cipherText, "secreto")
		require.NoError(t, err)
		assert.Equal(t, "Hola mundo", string(decrypted))
	})

	t.Run("WrongKeyYieldsEmpty", func(t *testing.T) {
		cipherText, err := processor.Encrypt([]byte("a reasonably long plaintext message"), "right")
		require.NoError(t, err)

		decrypted, err := processor.Decrypt(cipherText, "wrong")
		require.NoError(t, err)
		assert.Empty(t, decrypted)
	})

	t.Run("EmptyPlaintext", func(t *testing.T) {
		cipherText, err := processor.Encrypt([]byte{}, "key")
		require.NoError(t, err)

		decrypted, err := processor.Decrypt(cipherText, "key")
		require.NoError(t, err)
		assert.Empty(t, decrypted)
	})
}

func TestAESProcessor_MalformedInput(t *testing.T) {
	processor := setupAESProcessor(t)

	tests := []struct {
		name       string
		cipherText []byte
	}{
		{"Empty", []byte{}},
		{"MissingHeader", []byte("NotSalted0123456789abcdef0123456")},
		{"HeaderOnly", []byte("Salted__12345678")},
		{"TruncatedBody", append([]byte("Salted__12345678"), 0x01, 0x02, 0x03)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := processor.Decrypt(tt.cipherText, "key")
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestEVPBytesToKey(t *testing.T) {
	// openssl enc -aes-256-cbc -md md5 -S 0102030405060708 -pass pass:secreto -P
	key, iv := evpBytesToKey([]byte("secreto"), []byte{1, 2, 3, 4, 5, 6, 7, 8}, 32, 16)
	assert.Equal(t, "be3fad164abdc111375f5ea1ee854c25cd1b6989b11adc0c5f95e6d32dddc5c0", hex.EncodeToString(key))
	assert.Equal(t, "2140c5e7a31ad6928038f37fa1dfa7fa", hex.EncodeToString(iv))
}
