package logger

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus entry. It satisfies the logging interfaces of the
// calendar and scheduling packages.
type Logger struct {
	*logrus.Entry
}

// Option adjusts Setup
type Option func(*logrus.Logger)

// WithTextFormat switches the standard logger from JSON to human readable lines
func WithTextFormat() Option {
	return func(l *logrus.Logger) {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
}

// Setup configures the standard logrus logger from LOG_LEVEL. Output is JSON unless an option says otherwise.
func Setup(level string, out io.Writer, opts ...Option) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	std := logrus.StandardLogger()
	std.SetLevel(lvl)
	std.SetFormatter(&logrus.JSONFormatter{})
	if out != nil {
		std.SetOutput(out)
	}
	for _, opt := range opts {
		opt(std)
	}
	return nil
}

// New returns a logger on the standard logrus logger
func New() *Logger {
	return NewWithLogger(logrus.StandardLogger())
}

// NewWithLogger wraps a dedicated logrus logger
func NewWithLogger(l *logrus.Logger) *Logger {
	return &Logger{Entry: logrus.NewEntry(l)}
}

// Component returns a standard logger tagged with the emitting component
func Component(name string) *Logger {
	return New().WithField("component", name)
}

// WithContext tags the standard logger with the caller and request id found in ctx.
// The keys are the ones the auth and request id middlewares set on the gin context.
func WithContext(ctx context.Context) *Logger {
	fields := logrus.Fields{"user": "unknown"}
	for _, key := range []string{"user_id", "email"} {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			fields["user"] = v
		}
	}
	if v, ok := ctx.Value("request_id").(string); ok && v != "" {
		fields["request_id"] = v
	}
	return &Logger{Entry: New().Entry.WithFields(fields)}
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

// Debugf logs a formatted message at debug level with the logger's fields
func (l *Logger) Debugf(format string, args ...interface{}) { l.Entry.Debugf(format, args...) }

// Infof logs a formatted message at info level with the logger's fields
func (l *Logger) Infof(format string, args ...interface{}) { l.Entry.Infof(format, args...) }

// Warnf logs a formatted message at warning level with the logger's fields
func (l *Logger) Warnf(format string, args ...interface{}) { l.Entry.Warnf(format, args...) }

// Errorf logs a formatted message at error level with the logger's fields
func (l *Logger) Errorf(format string, args ...interface{}) { l.Entry.Errorf(format, args...) }
