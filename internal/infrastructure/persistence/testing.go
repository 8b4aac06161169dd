//go:build integration
// +build integration

package persistence

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/Criscape/security-crypto-lab/internal/domain/users"
	"github.com/Criscape/security-crypto-lab/internal/pkg/config"
	pkgTesting "github.com/Criscape/security-crypto-lab/internal/pkg/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Test constants
const (
	TestSaltLegacy = "0.417"
	TestHashA      = "c2FsdGVkLWhhc2gtYQ=="
	TestHashB      = "c2FsdGVkLWhhc2gtYg=="

	testPostgresDSN      = "user=postgres password=postgres host=localhost port=5432 sslmode=disable"
	testPostgresAdminDSN = "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
	testRedisURL         = "redis://localhost:6379/15"
)

// TestContext holds the repository under test
type TestContext struct {
	UserRepo users.UserRepository
}

// SetupTestStore opens a user store of the given type with automatic cleanup
func SetupTestStore(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  testPostgresDSN,
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(testPostgresAdminDSN, uniqueDBName)
		}

	case config.RedisDbType:
		url := os.Getenv("CRYPTO_SEC_TEST_REDIS_URL")
		if url == "" {
			url = testRedisURL
		}
		settings = config.DatabaseSettings{
			Type: config.RedisDbType,
			DSN:  url,
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	logger := pkgTesting.SetupTestLogger(t)
	repo, closeFn, err := OpenUserRepository(context.Background(), settings, logger)
	require.NoError(t, err, "Failed to open user store")

	t.Cleanup(func() {
		_ = closeFn()
		cleanupFunc()
	})

	return &TestContext{UserRepo: repo}
}

// CreateTestUser creates a user record with a unique name
func CreateTestUser(t *testing.T, hash string) *users.UserRecord {
	t.Helper()

	return &users.UserRecord{
		Name: "user-" + uuid.NewString(),
		Salt: TestSaltLegacy,
		Hash: hash,
	}
}
