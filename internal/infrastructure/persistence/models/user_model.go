package models

import (
	"time"

	"github.com/Criscape/security-crypto-lab/internal/domain/users"
)

// UserModel is the GORM database model for user hash records (infrastructure concern).
// It is the single schema definition for the users table.
type UserModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Name      string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Salt      string    `gorm:"not null;type:varchar(255)"`
	Hash      string    `gorm:"not null;type:varchar(128)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.UserRecord {
	return &users.UserRecord{
		Name: m.Name,
		Salt: m.Salt,
		Hash: m.Hash,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.UserRecord) {
	m.Name = u.Name
	m.Salt = u.Salt
	m.Hash = u.Hash
}
