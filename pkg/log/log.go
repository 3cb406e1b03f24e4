package log

// Logger is the logging interface the module's executables depend on.
type Logger interface {
	// Debug logs a message for low-level debugging.
	// keysAndValues lets you add structured context (e.g., "path", p).
	Debug(msg string, keysAndValues ...any)
	// Info logs general information about program progress.
	// keysAndValues lets you add structured context (e.g., "address", a).
	Info(msg string, keysAndValues ...any)
	// Warn logs a message for unexpected situations that aren't errors.
	Warn(msg string, keysAndValues ...any)
	// Error logs an error that prevents normal operation.
	Error(msg string, keysAndValues ...any)
	// Fatal logs a critical error and may terminate the program.
	Fatal(msg string, keysAndValues ...any)
	// WithKV returns a logger with an extra key-value pair attached to
	// all future logs.
	WithKV(key string, value any) Logger
	// GetAllKV returns all persistent key-value pairs for this logger.
	GetAllKV() []any
	// WithName returns a logger named after a module or component, used
	// to identify the source of logs.
	WithName(name string) Logger
	// Name returns the logger's name.
	Name() string
	// AddCallerSkip returns a logger that skips extra stack frames when
	// reporting the log source. Use when wrapping the logger in helpers;
	// returns itself if unsupported.
	AddCallerSkip(skip int) Logger
}

// Level represents the severity level of a log message.
type Level string

const (
	// LevelDebug is the most verbose level, used for debugging purposes.
	LevelDebug Level = "debug"
	// LevelInfo is used for informational messages.
	LevelInfo Level = "info"
	// LevelWarn is used for warning messages that indicate potential issues.
	LevelWarn Level = "warn"
	// LevelError is used for error messages that indicate something went wrong.
	LevelError Level = "error"
	// LevelFatal is used for fatal errors that typically cause the program to exit.
	LevelFatal Level = "fatal"
)
