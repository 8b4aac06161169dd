//go:build unit
// +build unit

package app

import (
	"context"
	"crypto/rsa"

	"github.com/Criscape/security-crypto-lab/internal/domain/users"

	"github.com/stretchr/testify/mock"
	secp256k1secec "gitlab.com/yawning/secp256k1-voi/secec"
)

// MockKeyGenerator is a mock implementation of KeyGenerator
type MockKeyGenerator struct {
	mock.Mock
}

func (m *MockKeyGenerator) GenerateRSA(ctx context.Context, bits int) (*rsa.PrivateKey, error) {
	args := m.Called(ctx, bits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsa.PrivateKey), args.Error(1)
}

func (m *MockKeyGenerator) GenerateSecp256k1(ctx context.Context) (*secp256k1secec.PrivateKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secp256k1secec.PrivateKey), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *users.UserRecord) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByName(ctx context.Context, name string) (*users.UserRecord, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.UserRecord), args.Error(1)
}
