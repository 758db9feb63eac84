package diagnostics

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Level mirrors the severity levels the log stream accepts.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Field is a structured key/value pair attached to a log entry.
type Field = zap.Field

// String, Int and Err build Fields the same way zap's package-level
// constructors do; re-exported here so callers outside this package never
// need to import zap directly.
func String(key, value string) Field { return zap.String(key, value) }
func Int(key string, value int) Field { return zap.Int(key, value) }
func Err(err error) Field             { return zap.Error(err) }

// Sink is the pair of output streams the core's embedder injects: a
// console stream for user-facing diagnostic text, and a log stream for
// structured operational entries.
type Sink interface {
	Console(msg string)
	Log(level Level, msg string, fields ...Field)
}

// zapSink is the default Sink: Console writes to a plain io.Writer, Log is
// backed by a zap.Logger.
type zapSink struct {
	console io.Writer
	logger  *zap.Logger
}

// NewSink returns a Sink whose console stream writes to console and whose
// log stream is backed by logger.
func NewSink(console io.Writer, logger *zap.Logger) Sink {
	return &zapSink{console: console, logger: logger}
}

// NewDefaultSink returns a Sink writing console text to w and structured
// logs through a production zap.Logger.
func NewDefaultSink(w io.Writer) (Sink, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	return NewSink(w, logger), nil
}

func (s *zapSink) Console(msg string) {
	fmt.Fprintln(s.console, msg)
}

func (s *zapSink) Log(level Level, msg string, fields ...Field) {
	switch level {
	case LevelDebug:
		s.logger.Debug(msg, fields...)
	case LevelInfo:
		s.logger.Info(msg, fields...)
	case LevelWarn:
		s.logger.Warn(msg, fields...)
	case LevelError:
		s.logger.Error(msg, fields...)
	}
}
