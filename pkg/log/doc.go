// Package log provides the structured logging facade used by this module's
// executables.
//
// The package is designed around explicit dependency injection, avoiding
// global state and encouraging clean, testable code.
//
// # Core Types
//
// The package centers around the Logger interface, which provides structured
// logging methods:
//
//	type Logger interface {
//	    Debug(msg string, keysAndValues ...any)
//	    Info(msg string, keysAndValues ...any)
//	    Warn(msg string, keysAndValues ...any)
//	    Error(msg string, keysAndValues ...any)
//	    Fatal(msg string, keysAndValues ...any)
//	    WithKV(key string, value any) Logger
//	    GetAllKV() []any
//	    WithName(name string) Logger
//	    Name() string
//	    AddCallerSkip(skip int) Logger
//	}
//
// Two implementations are provided:
//
//   - ZapLogger: A production-ready logger based on Uber's zap library
//   - NoopLogger: A logger that discards all messages (useful for testing)
//
// # Basic Usage
//
// Create a logger and use it directly:
//
//	conf := log.Config{
//	    Format: "json",
//	    Level:  log.LevelInfo,
//	    Output: "stderr",
//	}
//	logger := log.NewZapLogger(conf)
//	logger.Info("Keys generated", "address", addr.Hex())
//
// # Logger Enrichment
//
// Create derived loggers with additional context:
//
//	// Add a name hierarchy
//	cliLogger := logger.WithName("keygen")
//
//	// Add persistent key-value pairs
//	cliLogger = cliLogger.WithKV("output", path)
//
// # Environment Configuration
//
// The Config struct supports environment variables:
//
//   - LOG_FORMAT: Output format (console, logfmt, json)
//   - LOG_LEVEL: Minimum log level (debug, info, warn, error, fatal)
//   - LOG_OUTPUT: Output destination (stderr, stdout, or file path)
package log
