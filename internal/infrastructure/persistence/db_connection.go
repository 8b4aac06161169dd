package persistence

import (
	"context"
	"fmt"
	"log"

	"github.com/Criscape/security-crypto-lab/internal/domain/users"
	"github.com/Criscape/security-crypto-lab/internal/infrastructure/persistence/models"
	"github.com/Criscape/security-crypto-lab/internal/pkg/config"
	"github.com/Criscape/security-crypto-lab/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDBConnection creates a SQL database connection based on settings
// Supports both production and test environments
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	switch settings.Type {
	case config.PostgresDbType:
		return connectPostgres(settings)
	case config.SqliteDbType:
		return connectSQLite(settings)
	default:
		return nil, fmt.Errorf("unsupported SQL database type: %s", settings.Type)
	}
}

// connectPostgres establishes PostgreSQL connection with optional database creation
func connectPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if settings.Name == "" {
		return db, nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}

	// idempotent, fails when the database exists
	_, _ = sqlDB.Exec(fmt.Sprintf("CREATE DATABASE %s", settings.Name))

	if err := sqlDB.Close(); err != nil {
		return nil, fmt.Errorf("failed to close initial DB connection: %w", err)
	}

	dsn := fmt.Sprintf("%s dbname=%s", settings.DSN, settings.Name)
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.Name, err)
	}
	return db, nil
}

// connectSQLite establishes SQLite connection
func connectSQLite(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	// an in-memory database lives as long as its connection
	if dsn == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates the users table from models.UserModel
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.UserModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database (test cleanup utility)
func DropDatabase(adminDSN, dbName string) error {
	db, err := gorm.Open(postgres.Open(adminDSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		if err := CloseDB(db); err != nil {
			log.Printf("Warning: failed to close database connection: %v", err)
		}
	}()

	if err := db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)).Error; err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}
	return nil
}

// NewRedisClient parses a redis:// URL and checks the server answers
func NewRedisClient(ctx context.Context, settings config.DatabaseSettings) (*redis.Client, error) {
	opts, err := redis.ParseURL(settings.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// OpenUserRepository connects to the configured store, migrates SQL schemas and returns the
// repository together with a function releasing the connection.
func OpenUserRepository(ctx context.Context, settings config.DatabaseSettings, logger logger.Logger) (users.UserRepository, func() error, error) {
	if settings.Type == config.RedisDbType {
		client, err := NewRedisClient(ctx, settings)
		if err != nil {
			return nil, nil, err
		}
		repo, err := NewRedisUserRepository(client, logger)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, client.Close, nil
	}

	db, err := NewDBConnection(settings)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() error { return CloseDB(db) }

	if err := Migrate(db); err != nil {
		_ = closeDB()
		return nil, nil, err
	}

	repo, err := NewGormUserRepository(db, logger)
	if err != nil {
		_ = closeDB()
		return nil, nil, err
	}
	return repo, closeDB, nil
}
