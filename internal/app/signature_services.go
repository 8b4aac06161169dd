package app

import (
	"context"
	"crypto/subtle"

	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/pkg/codec"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"
	"github.com/Criscape/security-crypto-lab/internal/pkg/metrics"
)

// signatureService implements the SignatureService interface
type signatureService struct {
	keyGenerator       cryptoalg.KeyGenerator
	rsaProcessor       cryptoalg.RSAProcessor
	signatureProcessor cryptoalg.SignatureProcessor
	keySize            int
	logger             logger.Logger
}

// NewSignatureService creates a new signatureService generating keySize bit RSA keys
func NewSignatureService(
	keyGenerator cryptoalg.KeyGenerator,
	rsaProcessor cryptoalg.RSAProcessor,
	signatureProcessor cryptoalg.SignatureProcessor,
	keySize int,
	logger logger.Logger,
) (cryptoalg.SignatureService, error) {
	return &signatureService{
		keyGenerator:       keyGenerator,
		rsaProcessor:       rsaProcessor,
		signatureProcessor: signatureProcessor,
		keySize:            keySize,
		logger:             logger,
	}, nil
}

func (s *signatureService) Sign(ctx context.Context, message string) (result *cryptoalg.SignatureResult, err error) {
	defer func() { metrics.ObserveOperation(OpSign, err) }()

	digest := s.signatureProcessor.Digest([]byte(message))

	privateKey, err := s.keyGenerator.GenerateRSA(ctx, s.keySize)
	if err != nil {
		return nil, err
	}

	signature, err := s.signatureProcessor.Sign(digest, privateKey)
	if err != nil {
		return nil, err
	}

	return &cryptoalg.SignatureResult{
		Signature: codec.Encode(signature),
		PublicKey: s.rsaProcessor.EncodePublicKey(&privateKey.PublicKey),
	}, nil
}

// Validate reports both digests so callers can see what was compared.
func (s *signatureService) Validate(ctx context.Context, message, signature, publicKey string) (result *cryptoalg.SignatureValidation, err error) {
	defer func() { metrics.ObserveOperation(OpSignatureValidate, err) }()

	key, err := s.rsaProcessor.ParsePublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	rawSignature, err := codec.Decode("signature", signature)
	if err != nil {
		return nil, err
	}

	hashedMessage := s.signatureProcessor.Digest([]byte(message))
	hashedSign, err := s.signatureProcessor.Recover(rawSignature, key)
	if err != nil {
		s.logger.Warn("Signature recovery failed: ", err)
		return nil, err
	}

	return &cryptoalg.SignatureValidation{
		HashedMessage: hashedMessage,
		HashedSign:    hashedSign,
		Valid:         subtle.ConstantTimeCompare([]byte(hashedMessage), []byte(hashedSign)) == 1,
	}, nil
}
