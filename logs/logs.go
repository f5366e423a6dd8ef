package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type contextKey string

// ContextKeyTraceID is the key used to keep the trace id of an
// operation in its context
const ContextKeyTraceID contextKey = "trace_id"

// Fields collects the key value pairs attached to a log entry
type Fields interface {
	Add(key string, value interface{})
}

// Loggable is implemented by types that know how to describe
// themselves in a log entry
type Loggable interface {
	Log(fields Fields)
}

// MapFields is a Fields and Loggable implementation backed by a map
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for k, v := range f {
		fields.Add(k, v)
	}
}

// Logger is the logging interface used across the module
type Logger interface {
	Debug(ctx context.Context, msg string, loggable Loggable)
	Info(ctx context.Context, msg string, loggable Loggable)
	Warn(ctx context.Context, msg string, loggable Loggable)
	Error(ctx context.Context, msg string, loggable Loggable)
}

// WithTraceID returns a context that carries the provided trace id
func WithTraceID(ctx context.Context, traceID int64) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

// GetTraceID returns the trace id kept in the context or
// 0 if there is none
func GetTraceID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}

	traceID, ok := ctx.Value(ContextKeyTraceID).(int64)
	if !ok {
		return 0
	}

	return traceID
}

// LogrusLoggerProperties are the properties used to create
// a logrus backed Logger
type LogrusLoggerProperties struct {
	// Level is the lowest level that is written to Output
	Level logrus.Level

	// Output is where entries are written. Defaults to os.Stderr
	Output io.Writer
}

type logrusLogger struct {
	logger *logrus.Logger
}

// NewLogrus creates a new Logger that uses logrus to write
// json formatted entries
func NewLogrus(props LogrusLoggerProperties) Logger {
	logger := logrus.New()
	logger.SetLevel(props.Level)
	logger.SetFormatter(&logrus.JSONFormatter{})

	if props.Output != nil {
		logger.SetOutput(props.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	return logrusLogger{logger: logger}
}

func (l logrusLogger) entry(ctx context.Context, loggable Loggable) *logrus.Entry {
	fields := logrus.Fields{}
	if loggable != nil {
		loggable.Log(MapFields(fields))
	}

	if traceID := GetTraceID(ctx); traceID != 0 {
		fields[string(ContextKeyTraceID)] = traceID
	}

	return l.logger.WithFields(fields)
}

func (l logrusLogger) Debug(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Debug(msg)
}

func (l logrusLogger) Info(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Info(msg)
}

func (l logrusLogger) Warn(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Warn(msg)
}

func (l logrusLogger) Error(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Error(msg)
}
