package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides component-scoped structured logging.
type Logger interface {
	Info(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Debug(component, message string, fields map[string]interface{})
}

// Options selects the sink and verbosity of the application logger.
type Options struct {
	Level  string
	JSON   bool
	Writer io.Writer
}

// New builds the zerolog-backed logger described by opts.
func New(opts Options) Logger {
	level := ParseLevel(opts.Level)
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	if opts.JSON {
		return NewZerolog(writer, level)
	}
	return NewZerolog(zerolog.ConsoleWriter{Out: writer, TimeFormat: "15:04:05"}, level)
}

// ParseLevel maps a config string onto a zerolog level, defaulting to info.
func ParseLevel(value string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NoOp discards everything. Used by tests and by components built without a logger.
type NoOp struct{}

func (NoOp) Info(component, message string, fields map[string]interface{})    {}
func (NoOp) Error(component string, err error, fields map[string]interface{}) {}
func (NoOp) Warning(component, message string, fields map[string]interface{}) {}
func (NoOp) Debug(component, message string, fields map[string]interface{})   {}

// OrNoOp returns l, or a NoOp logger when l is nil.
func OrNoOp(l Logger) Logger {
	if l == nil {
		return NoOp{}
	}
	return l
}
