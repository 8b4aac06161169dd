package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Criscape/security-crypto-lab/internal/domain/users"
	"github.com/Criscape/security-crypto-lab/internal/infrastructure/persistence/models"
	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Upsert inserts the record or, when the name exists, overwrites its salt and hash.
func (r *gormUserRepository) Upsert(ctx context.Context, user *users.UserRecord) error {
	if err := user.Validate(); err != nil {
		return err
	}

	model := &models.UserModel{ID: uuid.NewString()}
	model.FromDomain(user)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"salt", "hash", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user record: %w", err)
	}

	r.logger.Info("Stored hash for user ", user.Name)
	return nil
}

func (r *gormUserRepository) GetByName(ctx context.Context, name string) (*users.UserRecord, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to fetch user record: %w", err)
	}
	return model.ToDomain(), nil
}
