package logger

import (
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// slogLogger adapts a *slog.Logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	handler := slog.NewTextHandler(os.Stdout, opts)

	return &slogLogger{logger: slog.New(handler)}
}

// NewFileLogger creates a JSON file logger with size based rotation.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	handler := slog.NewJSONHandler(writer, opts)

	return &slogLogger{logger: slog.New(handler)}
}

func (l *slogLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs a fatal message and exits.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}

func (l *slogLogger) With(keyValues ...interface{}) Logger {
	return &slogLogger{logger: l.logger.With(keyValues...)}
}
