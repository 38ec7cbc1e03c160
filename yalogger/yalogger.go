package yalogger

import (
	"github.com/google/uuid"
)

// Config selects the backend and output shape of a logger.
// An empty TimestampFormat keeps the logrus default, RFC 3339.
type Config struct {
	BaseLoggerType   BaseLoggerType
	Level            Level
	FullTimestamp    bool
	DisableTimestamp bool
	TimestampFormat  string
}

// BaseLogger produces request-scoped Logger values sharing one backend.
type BaseLogger interface {
	NewLogger() Logger
}

// Logger is the structured logger the parsing and env helpers report through.
// The With* methods return a new Logger and leave the receiver untouched.
//
// Example usage:
//
//	log := yalogger.NewBaseLogger(nil).NewLogger()
//	log.WithField("env_key", "HTTP_PORT").Warnf("Using sentinel %v", uint16(65535))
type Logger interface {
	Info(msg string)
	Infof(format string, args ...any)

	Trace(msg string)
	// Tracef is used for per-value conversion traces.
	//
	//   log.Tracef("Parsed %q as %v", raw, value)
	Tracef(format string, args ...any)

	Error(msg string)
	Errorf(format string, args ...any)

	Warn(msg string)
	// Warnf reports recoverable input problems, such as a malformed
	// environment variable replaced by a sentinel.
	//
	//   log.Warnf("Variable %s=%q replaced by sentinel %v", key, raw, value)
	Warnf(format string, args ...any)

	Debug(msg string)
	Debugf(format string, args ...any)

	// Fatal and Fatalf terminate the process after logging.
	Fatal(msg string)
	Fatalf(format string, args ...any)

	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger

	// WithRequestUUID tags every entry with KeyRequestID.
	WithRequestUUID(id uuid.UUID) Logger
	// WithRandomRequestID is WithRequestUUID with a fresh random UUID.
	WithRandomRequestID() Logger

	// GetFields returns a copy of the context fields.
	GetFields() map[string]any
	// GetField returns one context field, or nil when it is absent.
	//
	//   key, _ := log.GetField("env_key").(string)
	GetField(key string) any
}
