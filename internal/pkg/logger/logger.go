package logger

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})

	// With returns a Logger that adds the given key/value pairs to every record.
	With(keyValues ...interface{}) Logger
}
