//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/Criscape/security-crypto-lab/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer, level slog.Level) Logger {
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})
	return &slogLogger{logger: slog.New(handler)}
}

func TestSlogLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelInfo)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelDebug)

	logger.With("request_id", "abc-123").Debug("hashed message")

	output := buf.String()
	assert.Contains(t, output, "request_id=abc-123")
	assert.Contains(t, output, "hashed message")
}

func TestSlogLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf, slog.LevelInfo)

	assert.PanicsWithValue(t, "unrecoverable", func() {
		logger.Panic("unrecoverable")
	})
	assert.Contains(t, buf.String(), "unrecoverable")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	require.NotPanics(t, func() {
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}
