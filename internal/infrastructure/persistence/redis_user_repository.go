package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Criscape/security-crypto-lab/internal/domain/users"
	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	redisUserKeyPrefix = "crypto-sec/user/"
	redisFieldSalt     = "salt"
	redisFieldHash     = "hash"
	redisFieldUpdated  = "updated_at"
)

type redisUserRepository struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisUserRepository creates a UserRepository keeping one redis hash per user name
func NewRedisUserRepository(client *redis.Client, logger logger.Logger) (users.UserRepository, error) {
	return &redisUserRepository{
		client: client,
		logger: logger,
	}, nil
}

func redisUserKey(name string) string {
	return redisUserKeyPrefix + name
}

// Upsert writes salt and hash in a single HSET so readers never observe a half-updated record.
func (r *redisUserRepository) Upsert(ctx context.Context, user *users.UserRecord) error {
	if err := user.Validate(); err != nil {
		return err
	}

	err := r.client.HSet(ctx, redisUserKey(user.Name),
		redisFieldSalt, user.Salt,
		redisFieldHash, user.Hash,
		redisFieldUpdated, time.Now().UTC().Format(time.RFC3339),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to upsert user record: %w", err)
	}

	r.logger.Info("Stored hash for user ", user.Name)
	return nil
}

func (r *redisUserRepository) GetByName(ctx context.Context, name string) (*users.UserRecord, error) {
	values, err := r.client.HMGet(ctx, redisUserKey(name), redisFieldSalt, redisFieldHash).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user record: %w", err)
	}

	salt, saltOK := values[0].(string)
	hash, hashOK := values[1].(string)
	if !saltOK || !hashOK {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, name)
	}

	return &users.UserRecord{
		Name: name,
		Salt: salt,
		Hash: hash,
	}, nil
}
