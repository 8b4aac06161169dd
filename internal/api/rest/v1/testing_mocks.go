//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/Criscape/security-crypto-lab/internal/domain/cryptoalg"

	"github.com/stretchr/testify/mock"
)

// MockHashService is a mock implementation of HashService
type MockHashService struct {
	mock.Mock
}

func (m *MockHashService) Register(ctx context.Context, username, message string) error {
	args := m.Called(ctx, username, message)
	return args.Error(0)
}

func (m *MockHashService) Validate(ctx context.Context, username, message string) (bool, error) {
	args := m.Called(ctx, username, message)
	return args.Bool(0), args.Error(1)
}

// MockSymmetricCipherService is a mock implementation of SymmetricCipherService
type MockSymmetricCipherService struct {
	mock.Mock
}

func (m *MockSymmetricCipherService) Encrypt(ctx context.Context, message, key string) (string, error) {
	args := m.Called(ctx, message, key)
	return args.String(0), args.Error(1)
}

func (m *MockSymmetricCipherService) Decrypt(ctx context.Context, cipherText, key string) (string, error) {
	args := m.Called(ctx, cipherText, key)
	return args.String(0), args.Error(1)
}

// MockAsymmetricCipherService is a mock implementation of AsymmetricCipherService
type MockAsymmetricCipherService struct {
	mock.Mock
}

func (m *MockAsymmetricCipherService) Encrypt(ctx context.Context, message string) (*cryptoalg.AsymmetricEncryption, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.AsymmetricEncryption), args.Error(1)
}

func (m *MockAsymmetricCipherService) Decrypt(ctx context.Context, cipherText, privateKey string) (string, error) {
	args := m.Called(ctx, cipherText, privateKey)
	return args.String(0), args.Error(1)
}

// MockECCipherService is a mock implementation of ECCipherService
type MockECCipherService struct {
	mock.Mock
}

func (m *MockECCipherService) Encrypt(ctx context.Context, message string) (*cryptoalg.ECEncryption, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.ECEncryption), args.Error(1)
}

func (m *MockECCipherService) Decrypt(ctx context.Context, encryptInfo cryptoalg.EncodedEnvelope, privateKey string) (string, error) {
	args := m.Called(ctx, encryptInfo, privateKey)
	return args.String(0), args.Error(1)
}

// MockSignatureService is a mock implementation of SignatureService
type MockSignatureService struct {
	mock.Mock
}

func (m *MockSignatureService) Sign(ctx context.Context, message string) (*cryptoalg.SignatureResult, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.SignatureResult), args.Error(1)
}

func (m *MockSignatureService) Validate(ctx context.Context, message, signature, publicKey string) (*cryptoalg.SignatureValidation, error) {
	args := m.Called(ctx, message, signature, publicKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.SignatureValidation), args.Error(1)
}
