package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"
	"github.com/Criscape/security-crypto-lab/internal/domain/users"
	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"
	"github.com/Criscape/security-crypto-lab/internal/pkg/metrics"
)

// hashService implements the HashService interface
type hashService struct {
	userRepo      users.UserRepository
	hashProcessor cryptoalg.HashProcessor
	storeTimeout  time.Duration
	logger        logger.Logger
}

// NewHashService creates a new hashService instance. Every user store call is bounded by storeTimeout.
func NewHashService(
	userRepo users.UserRepository,
	hashProcessor cryptoalg.HashProcessor,
	storeTimeout time.Duration,
	logger logger.Logger,
) (users.HashService, error) {
	if storeTimeout <= 0 {
		return nil, fmt.Errorf("%w: store timeout must be positive", apperrors.ErrValidation)
	}
	return &hashService{
		userRepo:      userRepo,
		hashProcessor: hashProcessor,
		storeTimeout:  storeTimeout,
		logger:        logger,
	}, nil
}

func (s *hashService) Register(ctx context.Context, username, message string) (err error) {
	defer func() { metrics.ObserveOperation(OpHashRegister, err) }()

	if username == "" {
		return fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}

	hashed, err := s.hashProcessor.Hash(message, "")
	if err != nil {
		return err
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	record := &users.UserRecord{
		Name: username,
		Salt: hashed.Salt,
		Hash: hashed.Digest,
	}
	if err := s.userRepo.Upsert(storeCtx, record); err != nil {
		s.logger.Error("Failed to store hash for user ", username, ": ", err)
		return err
	}
	return nil
}

func (s *hashService) Validate(ctx context.Context, username, message string) (valid bool, err error) {
	defer func() { metrics.ObserveOperation(OpHashValidate, err) }()

	if username == "" {
		return false, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	record, err := s.userRepo.GetByName(storeCtx, username)
	if err != nil {
		return false, err
	}

	valid = s.hashProcessor.Verify(message, record.Salt, record.Hash)
	s.logger.Debug("Validated message for user ", username, ", valid: ", valid)
	return valid, nil
}
