package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
	RedisDbType    = "redis"
)

// DatabaseSettings holds the user store connection settings.
// For redis the DSN is a redis:// URL; Name is only used by postgres.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite redis"`
	DSN  string `mapstructure:"dsn" validate:"required"`
	Name string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	return nil
}
