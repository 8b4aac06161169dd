package config

import (
	"fmt"

	"github.com/Criscape/security-crypto-lab/internal/pkg/apperrors"
	"github.com/Criscape/security-crypto-lab/internal/pkg/validators"
)

// Log levels accepted in logger.log_level
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks accepted in logger.log_type
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation bounds for the file sink, in MB, files and days.
const (
	minRotationSize, maxRotationSize       = 1, 100
	minRotationBackups, maxRotationBackups = 1, 10
	minRotationAge, maxRotationAge         = 1, 365
)

// LoggerSettings selects the log sink. Rotation fields only apply to the file sink, where
// they are passed to lumberjack.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// DefaultLoggerSettings logs at info to the console. The rotation values are what a
// file sink gets when the configuration only sets log_type and file_path.
func DefaultLoggerSettings() LoggerSettings {
	return LoggerSettings{
		LogLevel:   LogLevelInfo,
		LogType:    LogTypeConsole,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

// Validate checks the level and sink, and the rotation bounds when logging to a file
func (s *LoggerSettings) Validate() error {
	if err := validators.ValidateStruct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}
	if s.FilePath == "" {
		return fmt.Errorf("%w: file_path is required for the file logger", apperrors.ErrValidation)
	}

	bounds := []struct {
		name     string
		value    int
		min, max int
	}{
		{"max_size", s.MaxSize, minRotationSize, maxRotationSize},
		{"max_backups", s.MaxBackups, minRotationBackups, maxRotationBackups},
		{"max_age", s.MaxAge, minRotationAge, maxRotationAge},
	}
	for _, b := range bounds {
		if b.value < b.min || b.value > b.max {
			return fmt.Errorf("%w: %s must be between %d and %d, got %d", apperrors.ErrValidation, b.name, b.min, b.max, b.value)
		}
	}
	return nil
}
