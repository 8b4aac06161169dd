package cryptography

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	mathrand "math/rand"
	"strconv"

	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"
)

const randomSaltSize = 16

// hashProcessor implements the HashProcessor interface
type hashProcessor struct {
	saltMode string
	logger   logger.Logger
}

// NewHashProcessor creates a hash processor generating salts in the given mode
func NewHashProcessor(saltMode string, logger logger.Logger) (cryptoalg.HashProcessor, error) {
	switch saltMode {
	case cryptoalg.SaltModeRandom, cryptoalg.SaltModeLegacy:
	default:
		return nil, fmt.Errorf("%w: unknown salt mode %q", apperrors.ErrValidation, saltMode)
	}
	return &hashProcessor{
		saltMode: saltMode,
		logger:   logger,
	}, nil
}

// GenerateSalt returns 16 random bytes in base64, or in legacy mode a uniform float in [0,1)
// rendered with three decimals.
func (h *hashProcessor) GenerateSalt() (string, error) {
	if h.saltMode == cryptoalg.SaltModeLegacy {
		return strconv.FormatFloat(mathrand.Float64(), 'f', 3, 64), nil
	}

	salt := make([]byte, randomSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: failed to generate salt: %w", apperrors.ErrCryptoOperation, err)
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

func (h *hashProcessor) Hash(message, salt string) (*cryptoalg.SaltedHash, error) {
	if salt == "" {
		generated, err := h.GenerateSalt()
		if err != nil {
			return nil, err
		}
		salt = generated
	}

	return &cryptoalg.SaltedHash{
		Salt:   salt,
		Digest: digestSHA512(message, salt),
	}, nil
}

func (h *hashProcessor) Verify(message, salt, digest string) bool {
	expected := digestSHA512(message, salt)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(digest)) == 1
}

func digestSHA512(message, salt string) string {
	sum := sha512.Sum512([]byte(message + salt))
	return base64.StdEncoding.EncodeToString(sum[:])
}
